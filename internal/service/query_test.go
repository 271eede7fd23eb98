package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parts_harvester/internal/domain"
	"parts_harvester/internal/service/mocks"
)

type QueryServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	parts   *mocks.MockPartQueryStore
	service *QueryService
}

func (s *QueryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.parts = mocks.NewMockPartQueryStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewQueryService(s.parts, logger)
}

func (s *QueryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}

func (s *QueryServiceTestSuite) TestRecommendedPrice_OddCount() {
	ctx := context.Background()

	s.parts.EXPECT().PositivePricesByArticle(ctx, "AB").Return([]float64{30, 10, 20}, nil)

	price, err := s.service.RecommendedPrice(ctx, "AB")

	s.NoError(err)
	s.Require().NotNil(price)
	s.Equal(27.0, *price)
}

func (s *QueryServiceTestSuite) TestRecommendedPrice_EvenCount() {
	ctx := context.Background()

	s.parts.EXPECT().PositivePricesByArticle(ctx, "AB").Return([]float64{10, 20}, nil)

	price, err := s.service.RecommendedPrice(ctx, "AB")

	s.NoError(err)
	s.Require().NotNil(price)
	s.Equal(20.25, *price)
}

func (s *QueryServiceTestSuite) TestRecommendedPrice_NoMatches() {
	ctx := context.Background()

	s.parts.EXPECT().PositivePricesByArticle(ctx, "ZZ").Return(nil, nil)

	price, err := s.service.RecommendedPrice(ctx, "ZZ")

	s.NoError(err)
	s.Nil(price)
}

func (s *QueryServiceTestSuite) TestSearch() {
	ctx := context.Background()

	offers := []domain.PartRecord{
		{Article: "AB-1", Price: 0},
		{Article: "AB-2", Price: 2},
		{Article: "AB-3", Price: 5},
	}

	s.parts.EXPECT().OffersByArticle(ctx, "AB").Return(offers, nil)
	s.parts.EXPECT().PositivePricesByArticle(ctx, "AB").Return([]float64{2, 5}, nil)

	result, err := s.service.Search(ctx, "AB")

	s.NoError(err)
	s.Len(result.Offers, 3)
	s.Require().NotNil(result.BestOffer)
	s.Equal("AB-2", result.BestOffer.Article)
	s.Require().NotNil(result.RecommendedPrice)
	s.Equal(4.73, *result.RecommendedPrice)
}

func (s *QueryServiceTestSuite) TestSearch_Empty() {
	ctx := context.Background()

	s.parts.EXPECT().OffersByArticle(ctx, "none").Return(nil, nil)
	s.parts.EXPECT().PositivePricesByArticle(ctx, "none").Return(nil, nil)

	result, err := s.service.Search(ctx, "none")

	s.NoError(err)
	s.NotNil(result.Offers)
	s.Empty(result.Offers)
	s.Nil(result.BestOffer)
	s.Nil(result.RecommendedPrice)
}

func (s *QueryServiceTestSuite) TestBestOffer_SkipsUnpricedRecords() {
	offers := []domain.PartRecord{
		{Article: "A", Price: 5},
		{Article: "B", Price: 0},
		{Article: "C", Price: 2},
	}

	best := BestOffer(offers)

	s.Require().NotNil(best)
	s.Equal("C", best.Article)
}

func (s *QueryServiceTestSuite) TestBestOffer_AllUnpriced() {
	offers := []domain.PartRecord{
		{Article: "A", Price: 0},
		{Article: "B", Price: 0},
	}

	s.Nil(BestOffer(offers))
}

func (s *QueryServiceTestSuite) TestBestOffer_TieKeepsFirst() {
	offers := []domain.PartRecord{
		{Article: "A", Price: 2},
		{Article: "B", Price: 2},
	}

	best := BestOffer(offers)

	s.Require().NotNil(best)
	s.Equal("A", best.Article)
}

func (s *QueryServiceTestSuite) TestTree_DeduplicatesCategories() {
	ctx := context.Background()

	rows := []domain.TaxonomyRow{
		{Brand: "BrandA", Model: "ModelX", Generation: "Gen1", Category: "Cat1"},
		{Brand: "BrandA", Model: "ModelX", Generation: "Gen1", Category: "Cat1"},
		{Brand: "BrandA", Model: "ModelX", Generation: "Gen1", Category: "Cat2"},
	}

	s.parts.EXPECT().TaxonomyRows(ctx).Return(rows, nil)

	tree, err := s.service.Tree(ctx)

	s.NoError(err)
	s.Equal([]string{"Cat1", "Cat2"}, tree["BrandA"]["ModelX"]["Gen1"])
}

func (s *QueryServiceTestSuite) TestTree_Placeholders() {
	ctx := context.Background()

	rows := []domain.TaxonomyRow{
		{Brand: "", Model: "", Generation: "", Category: ""},
	}

	s.parts.EXPECT().TaxonomyRows(ctx).Return(rows, nil)

	tree, err := s.service.Tree(ctx)

	s.NoError(err)
	s.Equal([]string{"Misc"}, tree["Unknown"]["Unknown"]["Unknown"])
}

func (s *QueryServiceTestSuite) TestTreeSearch() {
	ctx := context.Background()

	offers := []domain.PartRecord{{Article: "AB-1", Price: 3}}

	s.parts.EXPECT().SearchTree(ctx, "BMW", "320", "E90", "Brake").Return(offers, nil)

	result, err := s.service.TreeSearch(ctx, "BMW", "320", "E90", "Brake")

	s.NoError(err)
	s.Len(result, 1)
}

func (s *QueryServiceTestSuite) TestTreeSearch_EmptyIsNotNil() {
	ctx := context.Background()

	s.parts.EXPECT().SearchTree(ctx, "BMW", "320", "E90", "x").Return(nil, nil)

	result, err := s.service.TreeSearch(ctx, "BMW", "320", "E90", "x")

	s.NoError(err)
	s.NotNil(result)
	s.Empty(result)
}
