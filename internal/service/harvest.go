package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"parts_harvester/internal/config"
	"parts_harvester/internal/domain"
	"parts_harvester/internal/normalize"
)

// HarvestService runs every registered platform's discovery-and-harvest
// traversal, normalizes the results and upserts them into the part store.
// Platform failures are contained: one platform's failure never aborts the
// others.
type HarvestService struct {
	platforms []Platform
	parts     PartStore
	state     HarvestStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.HarvestConfig
}

func NewHarvestService(
	platforms []Platform,
	parts PartStore,
	state HarvestStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.HarvestConfig,
) *HarvestService {
	return &HarvestService{
		platforms: platforms,
		parts:     parts,
		state:     state,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

// Run harvests all platforms concurrently with a bounded worker pool and
// returns per-platform statistics.
func (s *HarvestService) Run(ctx context.Context) ([]*domain.HarvestStats, error) {
	startTime := time.Now()
	s.logger.Info("starting harvest", "platforms", len(s.platforms))

	stats := make([]*domain.HarvestStats, len(s.platforms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.PlatformWorkers)

	for i, platform := range s.platforms {
		g.Go(func() error {
			stats[i] = s.harvestPlatform(gctx, platform)
			return nil
		})
	}

	_ = g.Wait()

	var inserted, updated, errors int
	for _, st := range stats {
		if st == nil {
			continue
		}
		inserted += st.Inserted
		updated += st.Updated
		errors += st.Errors
	}

	s.logger.Info("harvest completed",
		"inserted", inserted,
		"updated", updated,
		"errors", errors,
		"duration", time.Since(startTime),
	)

	return stats, ctx.Err()
}

func (s *HarvestService) harvestPlatform(ctx context.Context, platform Platform) *domain.HarvestStats {
	startTime := time.Now()
	logger := s.logger.With("platform", platform.ID())
	logger.Info("harvesting platform", "platform_name", platform.Name())

	stats := &domain.HarvestStats{
		Platform: platform.ID(),
	}

	listings, err := platform.FetchAll(ctx)
	if err != nil {
		// Keep whatever the traversal accumulated before failing.
		logger.Warn("platform fetch incomplete", "fetched", len(listings), "error", err)
		stats.Errors++
	}
	stats.Fetched = len(listings)

	for _, raw := range listings {
		record := normalize.Record(raw)

		result, err := s.parts.Upsert(ctx, &record)
		if err != nil {
			stats.Errors++
			logger.Warn("upsert failed", "article", record.Article, "error", err)
			continue
		}

		if result == domain.Inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, &record, result == domain.Inserted); err != nil {
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	if err := s.updateHarvestState(ctx, stats); err != nil {
		logger.Warn("update harvest state failed", "error", err)
	}

	stats.Duration = time.Since(startTime)

	logger.Info("platform harvest completed",
		"fetched", stats.Fetched,
		"inserted", stats.Inserted,
		"updated", stats.Updated,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats
}

func (s *HarvestService) updateHarvestState(ctx context.Context, stats *domain.HarvestStats) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		state, err := s.state.Get(txCtx, stats.Platform)
		if err != nil {
			return err
		}

		state.Platform = stats.Platform
		state.LastHarvestAt = time.Now()
		state.TotalHarvested += int64(stats.Inserted + stats.Updated)

		return s.state.Update(txCtx, state)
	})
}
