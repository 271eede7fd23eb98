package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"parts_harvester/internal/domain"
)

// priceMarkup is the margin applied over the market median when recommending
// a price.
const priceMarkup = 1.35

// CatalogTree maps brand -> model -> generation -> category list.
type CatalogTree = map[string]map[string]map[string][]string

// SearchResult is the query API payload for an article search.
type SearchResult struct {
	RecommendedPrice *float64            `json:"recommended_price"`
	Offers           []domain.PartRecord `json:"offers"`
	BestOffer        *domain.PartRecord  `json:"best_offer"`
}

// QueryService answers price-recommendation and catalog-browsing queries over
// the persisted parts.
type QueryService struct {
	parts  PartQueryStore
	logger *slog.Logger
}

func NewQueryService(parts PartQueryStore, logger *slog.Logger) *QueryService {
	return &QueryService{
		parts:  parts,
		logger: logger,
	}
}

// Search returns all offers whose article contains the given substring,
// cheapest first, together with the recommended price and the best offer.
// "No matches" is a well-formed empty result, not an error.
func (s *QueryService) Search(ctx context.Context, article string) (*SearchResult, error) {
	offers, err := s.parts.OffersByArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("fetch offers: %w", err)
	}

	recommended, err := s.RecommendedPrice(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("recommended price: %w", err)
	}

	if offers == nil {
		offers = []domain.PartRecord{}
	}

	return &SearchResult{
		RecommendedPrice: recommended,
		Offers:           offers,
		BestOffer:        BestOffer(offers),
	}, nil
}

// RecommendedPrice computes the median of the strictly positive prices
// matching the article substring, with the markup applied and rounded to two
// decimals. Nil means no recommendation is available.
func (s *QueryService) RecommendedPrice(ctx context.Context, article string) (*float64, error) {
	prices, err := s.parts.PositivePricesByArticle(ctx, article)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, nil
	}

	recommended := math.Round(median(prices)*priceMarkup*100) / 100
	return &recommended, nil
}

// BestOffer picks the cheapest offer with a usable price. Offers without a
// positive price are never chosen; ties keep the earlier offer.
func BestOffer(offers []domain.PartRecord) *domain.PartRecord {
	var best *domain.PartRecord
	for i := range offers {
		if offers[i].Price <= 0 {
			continue
		}
		if best == nil || offers[i].Price < best.Price {
			best = &offers[i]
		}
	}
	return best
}

// Tree builds the brand -> model -> generation -> categories catalog from a
// single scan of the store. Missing brand/model/generation group under
// "Unknown", missing categories under "Misc"; category lists are deduplicated
// in order of first insertion.
func (s *QueryService) Tree(ctx context.Context) (CatalogTree, error) {
	rows, err := s.parts.TaxonomyRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch taxonomy rows: %w", err)
	}

	tree := make(CatalogTree)
	for _, row := range rows {
		brand := orDefault(row.Brand, "Unknown")
		model := orDefault(row.Model, "Unknown")
		generation := orDefault(row.Generation, "Unknown")
		category := orDefault(row.Category, "Misc")

		brandNode, ok := tree[brand]
		if !ok {
			brandNode = make(map[string]map[string][]string)
			tree[brand] = brandNode
		}
		modelNode, ok := brandNode[model]
		if !ok {
			modelNode = make(map[string][]string)
			brandNode[model] = modelNode
		}
		if !slices.Contains(modelNode[generation], category) {
			modelNode[generation] = append(modelNode[generation], category)
		}
	}
	return tree, nil
}

// TreeSearch returns offers matching the brand/model/generation exactly and
// the category by substring, cheapest first.
func (s *QueryService) TreeSearch(ctx context.Context, brand, model, generation, category string) ([]domain.PartRecord, error) {
	offers, err := s.parts.SearchTree(ctx, brand, model, generation, category)
	if err != nil {
		return nil, fmt.Errorf("tree search: %w", err)
	}
	if offers == nil {
		offers = []domain.PartRecord{}
	}
	return offers, nil
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
