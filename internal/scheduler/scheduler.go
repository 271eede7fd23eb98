package scheduler

import (
	"context"
	"log/slog"
	"time"

	"parts_harvester/internal/domain"
)

// Harvester defines the interface for harvest runs.
type Harvester interface {
	Run(ctx context.Context) ([]*domain.HarvestStats, error)
}

type Scheduler struct {
	harvester Harvester
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(harvester Harvester, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		harvester: harvester,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runHarvest(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runHarvest(ctx)
		}
	}
}

func (s *Scheduler) runHarvest(ctx context.Context) {
	harvestCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if _, err := s.harvester.Run(harvestCtx); err != nil {
		s.logger.Error("harvest failed", "error", err)
	}
}
