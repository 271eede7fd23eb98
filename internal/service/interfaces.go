package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"parts_harvester/internal/domain"
)

// Platform is one marketplace harvester: it walks the platform's taxonomy and
// returns every raw listing found.
type Platform interface {
	ID() string
	Name() string
	FetchAll(ctx context.Context) ([]domain.RawListing, error)
}

type PartStore interface {
	Upsert(ctx context.Context, part *domain.PartRecord) (domain.UpsertResult, error)
}

type PartQueryStore interface {
	OffersByArticle(ctx context.Context, article string) ([]domain.PartRecord, error)
	PositivePricesByArticle(ctx context.Context, article string) ([]float64, error)
	TaxonomyRows(ctx context.Context) ([]domain.TaxonomyRow, error)
	SearchTree(ctx context.Context, brand, model, generation, category string) ([]domain.PartRecord, error)
}

type HarvestStateStore interface {
	Get(ctx context.Context, platform string) (*domain.HarvestState, error)
	Update(ctx context.Context, state *domain.HarvestState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, part *domain.PartRecord, isNew bool) error
	Close() error
}
