package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"parts_harvester/internal/domain"
)

type PartStore struct {
	db *sqlx.DB
}

func NewPartStore(db *sqlx.DB) *PartStore {
	return &PartStore{db: db}
}

// Upsert inserts a part or overwrites the mutable fields of the existing row
// sharing its (platform, article, url) identity key. The single-statement
// ON CONFLICT form keeps the check-then-write atomic under concurrent
// harvesters; xmax = 0 distinguishes a fresh insert from a rewrite.
func (s *PartStore) Upsert(ctx context.Context, part *domain.PartRecord) (domain.UpsertResult, error) {
	query := `
		INSERT INTO parts (
			platform, article, brand, model, generation, category,
			description, price, currency, location, url, image_url, last_seen
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (platform, article, url) DO UPDATE SET
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			generation = EXCLUDED.generation,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			location = EXCLUDED.location,
			image_url = EXCLUDED.image_url,
			last_seen = EXCLUDED.last_seen
		RETURNING id, (xmax = 0) AS inserted`

	var row struct {
		ID       int64 `db:"id"`
		Inserted bool  `db:"inserted"`
	}

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query,
		part.Platform,
		part.Article,
		part.Brand,
		part.Model,
		part.Generation,
		part.Category,
		part.Description,
		part.Price,
		part.Currency,
		part.Location,
		part.URL,
		part.ImageURL,
		part.LastSeen,
	)
	if err != nil {
		return domain.Updated, fmt.Errorf("upsert part: %w", err)
	}

	part.ID = row.ID
	if row.Inserted {
		return domain.Inserted, nil
	}
	return domain.Updated, nil
}

// OffersByArticle returns all parts whose article contains the given
// substring, cheapest first.
func (s *PartStore) OffersByArticle(ctx context.Context, article string) ([]domain.PartRecord, error) {
	query := `
		SELECT id, platform, article, brand, model, generation, category,
		       description, price, currency, location, url, image_url, last_seen
		FROM parts
		WHERE article LIKE '%' || $1 || '%'
		ORDER BY price ASC, id ASC`

	var offers []domain.PartRecord
	err := s.db.SelectContext(ctx, &offers, query, article)
	return offers, err
}

// PositivePricesByArticle returns the strictly positive prices of parts whose
// article contains the given substring.
func (s *PartStore) PositivePricesByArticle(ctx context.Context, article string) ([]float64, error) {
	query := `SELECT price FROM parts WHERE article LIKE '%' || $1 || '%' AND price > 0`

	var prices []float64
	err := s.db.SelectContext(ctx, &prices, query, article)
	return prices, err
}

// TaxonomyRows returns the grouping slice of every part in insertion order.
func (s *PartStore) TaxonomyRows(ctx context.Context) ([]domain.TaxonomyRow, error) {
	query := `SELECT brand, model, generation, category FROM parts ORDER BY id ASC`

	var rows []domain.TaxonomyRow
	err := s.db.SelectContext(ctx, &rows, query)
	return rows, err
}

// SearchTree returns parts matching the brand/model/generation exactly and
// the category by substring, cheapest first.
func (s *PartStore) SearchTree(ctx context.Context, brand, model, generation, category string) ([]domain.PartRecord, error) {
	query := `
		SELECT id, platform, article, brand, model, generation, category,
		       description, price, currency, location, url, image_url, last_seen
		FROM parts
		WHERE brand = $1 AND model = $2 AND generation = $3
		  AND category LIKE '%' || $4 || '%'
		ORDER BY price ASC, id ASC`

	var offers []domain.PartRecord
	err := s.db.SelectContext(ctx, &offers, query, brand, model, generation, category)
	return offers, err
}
