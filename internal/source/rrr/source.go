package rrr

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"parts_harvester/internal/config"
	"parts_harvester/internal/domain"
	"parts_harvester/internal/fetch"
)

const (
	PlatformID   = "rrr"
	PlatformName = "RRR.lt"
)

// Source harvests part listings from rrr.lt. Each taxonomy level and the
// search itself prefer a structured endpoint and fall back to parsing the
// rendered page.
type Source struct {
	client        *fetch.Client
	baseURL       string
	pageSize      int
	branchWorkers int
	logger        *slog.Logger
}

func New(cfg config.PlatformConfig, client *fetch.Client, branchWorkers int, logger *slog.Logger) *Source {
	return &Source{
		client:        client,
		baseURL:       cfg.BaseURL,
		pageSize:      cfg.PageSize,
		branchWorkers: branchWorkers,
		logger:        logger.With("platform", PlatformID),
	}
}

// ID returns the platform identifier.
func (s *Source) ID() string {
	return PlatformID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return PlatformName
}

// FetchAll walks the full brand/model/generation/category taxonomy and
// returns every raw listing found. Brand subtrees are harvested concurrently
// by a bounded worker pool; a failed branch contributes nothing and never
// aborts the others.
func (s *Source) FetchAll(ctx context.Context) ([]domain.RawListing, error) {
	brands := s.Brands(ctx)
	s.logger.Info("discovered brands", "count", len(brands))

	var (
		mu  sync.Mutex
		all []domain.RawListing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.branchWorkers)

	for _, brand := range brands {
		g.Go(func() error {
			listings := s.fetchBrand(gctx, brand)

			mu.Lock()
			all = append(all, listings...)
			mu.Unlock()

			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return all, err
	}
	return all, nil
}

func (s *Source) fetchBrand(ctx context.Context, brand domain.TaxonomyNode) []domain.RawListing {
	var listings []domain.RawListing

	for _, model := range s.Models(ctx, brand) {
		generations := s.Generations(ctx, brand, model)
		if len(generations) == 0 {
			// No generation data for this model; harvest the whole subtree
			// under a single unspecified generation.
			generations = []domain.TaxonomyNode{{}}
		}

		for _, generation := range generations {
			categories := s.Categories(ctx, brand, model, generation)
			if len(categories) == 0 {
				categories = []domain.TaxonomyNode{{Name: "All"}}
			}

			for _, category := range categories {
				listings = append(listings, s.Harvest(ctx, brand, model, generation, category)...)
			}
		}
	}

	s.logger.Debug("harvested brand", "brand", brand.Name, "listings", len(listings))
	return listings
}

// Brands discovers the top taxonomy level.
func (s *Source) Brands(ctx context.Context) []domain.TaxonomyNode {
	nodes := s.fetchNodes(ctx, "/api/brands", nil)
	if len(nodes) > 0 {
		return nodes
	}

	body, err := s.client.Get(ctx, s.baseURL+"/en", nil)
	if err != nil {
		s.logger.Warn("brand discovery failed", "error", err)
		return nil
	}
	return parseOptions(body, "brand")
}

// Models discovers models for one brand.
func (s *Source) Models(ctx context.Context, brand domain.TaxonomyNode) []domain.TaxonomyNode {
	params := url.Values{}
	params.Set("brand", brand.ID)

	nodes := s.fetchNodes(ctx, "/api/models", params)
	if len(nodes) > 0 {
		return nodes
	}

	body, err := s.client.Get(ctx, s.baseURL+"/en/auto-parts/"+brand.ID, nil)
	if err != nil {
		s.logger.Warn("model discovery failed", "brand", brand.Name, "error", err)
		return nil
	}
	return parseOptions(body, "model")
}

// Generations discovers generations for one brand/model pair. There is no
// rendered-page fallback at this level.
func (s *Source) Generations(ctx context.Context, brand, model domain.TaxonomyNode) []domain.TaxonomyNode {
	params := url.Values{}
	params.Set("brand", brand.ID)
	params.Set("model", model.ID)
	return s.fetchNodes(ctx, "/api/generations", params)
}

// Categories discovers part categories for one brand/model/generation path.
func (s *Source) Categories(ctx context.Context, brand, model, generation domain.TaxonomyNode) []domain.TaxonomyNode {
	params := url.Values{}
	params.Set("brand", brand.ID)
	params.Set("model", model.ID)
	params.Set("generation", generation.ID)
	return s.fetchNodes(ctx, "/api/categories", params)
}

func (s *Source) fetchNodes(ctx context.Context, path string, params url.Values) []domain.TaxonomyNode {
	body, err := s.client.Get(ctx, s.baseURL+path, params)
	if err != nil {
		return nil
	}

	var raw []apiNode
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	nodes := make([]domain.TaxonomyNode, 0, len(raw))
	for _, n := range raw {
		if n.ID == "" || n.Name == "" {
			continue
		}
		nodes = append(nodes, domain.TaxonomyNode{ID: n.ID.String(), Name: n.Name})
	}
	return nodes
}

// Harvest paginates the search endpoint for one fully-specified taxonomy
// path. The structured endpoint stops when a page returns fewer items than
// the requested size; if it yields nothing usable on the first page, the
// rendered-page fallback takes over for the rest of this path.
func (s *Source) Harvest(ctx context.Context, brand, model, generation, category domain.TaxonomyNode) []domain.RawListing {
	var results []domain.RawListing

	for page := 1; ; page++ {
		params := s.searchParams(page, brand, model, generation, category)

		var resp searchResponse
		ok := s.fetchSearchJSON(ctx, params, &resp)
		if ok && len(resp.Items) > 0 {
			for _, item := range resp.Items {
				results = append(results, s.rawFromItem(item, brand.Name, model.Name, generation.Name, category.Name))
			}
			if len(resp.Items) < s.pageSize {
				return results
			}
			continue
		}

		if page == 1 {
			return s.harvestRendered(ctx, brand, model, generation, category)
		}
		return results
	}
}

func (s *Source) harvestRendered(ctx context.Context, brand, model, generation, category domain.TaxonomyNode) []domain.RawListing {
	var results []domain.RawListing

	for page := 1; ; page++ {
		params := s.searchParams(page, brand, model, generation, category)

		body, err := s.client.Get(ctx, s.baseURL+"/en/auto-parts/search", params)
		if err != nil {
			s.logger.Debug("rendered search fetch failed",
				"brand", brand.Name,
				"page", page,
				"error", err,
			)
			return results
		}

		items := s.parseSearchPage(body, brand.Name, model.Name, generation.Name, category.Name)
		if len(items) == 0 {
			return results
		}
		results = append(results, items...)
	}
}

func (s *Source) searchParams(page int, brand, model, generation, category domain.TaxonomyNode) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("brand", brand.ID)
	params.Set("model", model.ID)
	params.Set("generation", generation.ID)
	params.Set("category", category.ID)
	params.Set("size", strconv.Itoa(s.pageSize))
	return params
}

func (s *Source) fetchSearchJSON(ctx context.Context, params url.Values, out *searchResponse) bool {
	body, err := s.client.Get(ctx, s.baseURL+"/api/search", params)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false
	}
	return true
}

func (s *Source) rawFromItem(item searchItem, brand, model, generation, category string) domain.RawListing {
	return domain.RawListing{
		Platform:    PlatformID,
		Article:     item.article(),
		Brand:       brand,
		Model:       model,
		Generation:  generation,
		Category:    category,
		Description: item.description(),
		Price:       item.price(),
		Currency:    item.currency(),
		Location:    item.location(),
		URL:         item.url(),
		ImageURL:    item.imageURL(),
	}
}
