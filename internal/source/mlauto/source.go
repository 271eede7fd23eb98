package mlauto

import (
	"context"
	"log/slog"

	"parts_harvester/internal/domain"
)

const (
	PlatformID   = "mlauto"
	PlatformName = "ML Auto"
)

// Source is a placeholder until the ML Auto connector is implemented.
type Source struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Source {
	return &Source{logger: logger.With("platform", PlatformID)}
}

func (s *Source) ID() string {
	return PlatformID
}

func (s *Source) Name() string {
	return PlatformName
}

func (s *Source) FetchAll(ctx context.Context) ([]domain.RawListing, error) {
	s.logger.Debug("connector not implemented, skipping")
	return nil, nil
}
