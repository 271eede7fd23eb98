package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"parts_harvester/internal/domain"
)

type HarvestStateStore struct {
	db *sqlx.DB
}

func NewHarvestStateStore(db *sqlx.DB) *HarvestStateStore {
	return &HarvestStateStore{db: db}
}

func (s *HarvestStateStore) Get(ctx context.Context, platform string) (*domain.HarvestState, error) {
	var state domain.HarvestState
	query := `
		SELECT id, platform, last_harvest_at, total_harvested
		FROM harvest_state
		WHERE platform = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, platform)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for platforms never harvested before
		return &domain.HarvestState{
			Platform:      platform,
			LastHarvestAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *HarvestStateStore) Update(ctx context.Context, state *domain.HarvestState) error {
	query := `
		INSERT INTO harvest_state (platform, last_harvest_at, total_harvested)
		VALUES ($1, $2, $3)
		ON CONFLICT (platform) DO UPDATE SET
			last_harvest_at = EXCLUDED.last_harvest_at,
			total_harvested = EXCLUDED.total_harvested`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Platform,
		state.LastHarvestAt,
		state.TotalHarvested,
	)
	return err
}
