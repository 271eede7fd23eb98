package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parts_harvester/internal/config"
	"parts_harvester/internal/domain"
	"parts_harvester/internal/service/mocks"
)

type HarvestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	platform  *mocks.MockPlatform
	parts     *mocks.MockPartStore
	state     *mocks.MockHarvestStateStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *HarvestService
	cfg     config.HarvestConfig
	logger  *slog.Logger
}

func (s *HarvestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.platform = mocks.NewMockPlatform(s.ctrl)
	s.parts = mocks.NewMockPartStore(s.ctrl)
	s.state = mocks.NewMockHarvestStateStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.HarvestConfig{
		Interval:        time.Hour,
		PlatformWorkers: 2,
		BranchWorkers:   2,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.platform.EXPECT().ID().Return("test-platform").AnyTimes()
	s.platform.EXPECT().Name().Return("Test Platform").AnyTimes()

	s.service = NewHarvestService(
		[]Platform{s.platform},
		s.parts,
		s.state,
		s.txManager,
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *HarvestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHarvestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HarvestServiceTestSuite))
}

func (s *HarvestServiceTestSuite) expectStateUpdate() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.state.EXPECT().Get(gomock.Any(), "test-platform").Return(&domain.HarvestState{Platform: "test-platform"}, nil)
	s.state.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *HarvestServiceTestSuite) TestRun_InsertsAndUpdates() {
	price := 12.5
	listings := []domain.RawListing{
		{Platform: "test-platform", Article: "A-1", Price: &price, URL: "https://x/p/1"},
		{Platform: "test-platform", Article: "A-2", PriceText: "30,00 EUR", URL: "https://x/p/2"},
	}

	s.platform.EXPECT().FetchAll(gomock.Any()).Return(listings, nil)

	gomock.InOrder(
		s.parts.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, part *domain.PartRecord) (domain.UpsertResult, error) {
				s.Equal("A-1", part.Article)
				s.Equal(12.5, part.Price)
				s.Equal("EUR", part.Currency)
				return domain.Inserted, nil
			},
		),
		s.parts.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, part *domain.PartRecord) (domain.UpsertResult, error) {
				s.Equal("A-2", part.Article)
				s.Equal(30.0, part.Price)
				return domain.Updated, nil
			},
		),
	)

	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), false).Return(nil)

	s.expectStateUpdate()

	stats, err := s.service.Run(context.Background())

	s.NoError(err)
	s.Require().Len(stats, 1)
	s.Equal(2, stats[0].Fetched)
	s.Equal(1, stats[0].Inserted)
	s.Equal(1, stats[0].Updated)
	s.Equal(0, stats[0].Errors)
	s.Equal(2, stats[0].Published)
}

func (s *HarvestServiceTestSuite) TestRun_UpsertErrorCounted() {
	listings := []domain.RawListing{
		{Platform: "test-platform", Article: "A-1", URL: "https://x/p/1"},
		{Platform: "test-platform", Article: "A-2", URL: "https://x/p/2"},
	}

	s.platform.EXPECT().FetchAll(gomock.Any()).Return(listings, nil)

	gomock.InOrder(
		s.parts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.Updated, errors.New("db error")),
		s.parts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.Inserted, nil),
	)

	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	s.expectStateUpdate()

	stats, err := s.service.Run(context.Background())

	s.NoError(err)
	s.Equal(1, stats[0].Errors)
	s.Equal(1, stats[0].Inserted)
	s.Equal(1, stats[0].Published)
}

func (s *HarvestServiceTestSuite) TestRun_PlatformFailureContained() {
	failing := mocks.NewMockPlatform(s.ctrl)
	failing.EXPECT().ID().Return("broken").AnyTimes()
	failing.EXPECT().Name().Return("Broken").AnyTimes()
	failing.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("network down"))

	listings := []domain.RawListing{
		{Platform: "test-platform", Article: "A-1", URL: "https://x/p/1"},
	}
	s.platform.EXPECT().FetchAll(gomock.Any()).Return(listings, nil)
	s.parts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.Inserted, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	// Both platforms still report state, including the failed one.
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(2)
	s.state.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, platform string) (*domain.HarvestState, error) {
			return &domain.HarvestState{Platform: platform}, nil
		},
	).Times(2)
	s.state.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := NewHarvestService(
		[]Platform{s.platform, failing},
		s.parts,
		s.state,
		s.txManager,
		s.publisher,
		s.logger,
		s.cfg,
	)

	stats, err := service.Run(context.Background())

	s.NoError(err)
	s.Require().Len(stats, 2)
	s.Equal(1, stats[0].Inserted)
	s.Equal(0, stats[1].Fetched)
	s.Equal(1, stats[1].Errors)
}

func (s *HarvestServiceTestSuite) TestRun_PublisherNil() {
	listings := []domain.RawListing{
		{Platform: "test-platform", Article: "A-1", URL: "https://x/p/1"},
	}

	s.platform.EXPECT().FetchAll(gomock.Any()).Return(listings, nil)
	s.parts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.Inserted, nil)

	s.expectStateUpdate()

	service := NewHarvestService(
		[]Platform{s.platform},
		s.parts,
		s.state,
		s.txManager,
		nil,
		s.logger,
		s.cfg,
	)

	stats, err := service.Run(context.Background())

	s.NoError(err)
	s.Equal(1, stats[0].Inserted)
	s.Equal(0, stats[0].Published)
}

func (s *HarvestServiceTestSuite) TestRun_StateUpdateFailureNonFatal() {
	s.platform.EXPECT().FetchAll(gomock.Any()).Return(nil, nil)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("tx failed"))

	stats, err := s.service.Run(context.Background())

	s.NoError(err)
	s.Require().Len(stats, 1)
	s.Equal(0, stats[0].Fetched)
}
