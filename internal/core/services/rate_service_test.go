package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
	"github.com/casavera/fx_backend/internal/core/services"
	"github.com/casavera/fx_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) LoadRateTable(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateRepository) SaveRateTable(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRateRepository) ListRateHistory(ctx context.Context, currencyCode domain.CurrencyCode, limit int, before time.Time) ([]domain.RatePoint, error) {
	args := m.Called(ctx, currencyCode, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatePoint), args.Error(1)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context) (map[domain.CurrencyCode]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.CurrencyCode]float64), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockRateRepository
	mockSource *MockRateSource
	service    *services.RateService
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.mockSource = new(MockRateSource)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewRateService(suite.mockRepo, suite.mockSource, logger, time.Hour)
}

// --- Test Cases ---

func (suite *RateServiceTestSuite) TestSnapshot_DefaultsBeforeInit() {
	table := suite.service.Snapshot()

	suite.Equal(1.0, table.Rate(domain.CurrencyEUR))
	suite.Equal(domain.DefaultRateGBP, table.Rate(domain.CurrencyGBP))
	suite.Equal(domain.DefaultRateUSD, table.Rate(domain.CurrencyUSD))
	suite.Equal(domain.DefaultRateRUB, table.Rate(domain.CurrencyRUB))
	suite.Nil(table.UpdatedAt)
}

func (suite *RateServiceTestSuite) TestInit_AdoptsPersistedCache() {
	ctx := context.Background()
	cachedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cached := &domain.RateTable{
		Rates: map[domain.CurrencyCode]float64{
			domain.CurrencyEUR: 1,
			domain.CurrencyGBP: 0.91,
		},
		UpdatedAt: &cachedAt,
	}
	suite.mockRepo.On("LoadRateTable", mock.Anything).Return(cached, nil).Once()
	// The immediate async refresh may or may not run before Stop
	suite.mockSource.On("FetchRates", mock.Anything).Return(nil, errors.New("provider down")).Maybe()

	err := suite.service.Init(ctx)
	suite.Require().NoError(err)
	defer suite.service.Stop()

	table := suite.service.Snapshot()
	suite.Equal(0.91, table.Rate(domain.CurrencyGBP))
	// Keys absent from the cache keep the built-in defaults
	suite.Equal(domain.DefaultRateUSD, table.Rate(domain.CurrencyUSD))
	suite.Require().NotNil(table.UpdatedAt)
	suite.True(cachedAt.Equal(*table.UpdatedAt))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestInit_NoCacheKeepsDefaults() {
	ctx := context.Background()
	suite.mockRepo.On("LoadRateTable", mock.Anything).Return(nil, apperrors.NewNotFoundError("no cached rate table")).Once()
	suite.mockSource.On("FetchRates", mock.Anything).Return(nil, errors.New("provider down")).Maybe()

	err := suite.service.Init(ctx)
	suite.Require().NoError(err)
	defer suite.service.Stop()

	table := suite.service.Snapshot()
	suite.Equal(domain.DefaultRateGBP, table.Rate(domain.CurrencyGBP))
	suite.Nil(table.UpdatedAt)
}

func (suite *RateServiceTestSuite) TestRefresh_MergesAndPersists() {
	ctx := context.Background()
	fetched := map[domain.CurrencyCode]float64{
		domain.CurrencyGBP: 0.9,
		domain.CurrencyUSD: 1.12,
	}
	suite.mockSource.On("FetchRates", ctx).Return(fetched, nil).Once()
	suite.mockRepo.On("SaveRateTable", ctx, mock.MatchedBy(func(table domain.RateTable) bool {
		return table.Rate(domain.CurrencyGBP) == 0.9 &&
			table.Rate(domain.CurrencyUSD) == 1.12 &&
			table.Rate(domain.CurrencyRUB) == domain.DefaultRateRUB &&
			table.UpdatedAt != nil
	})).Return(nil).Once()

	suite.service.Refresh(ctx)

	table := suite.service.Snapshot()
	suite.Equal(0.9, table.Rate(domain.CurrencyGBP))
	suite.Equal(1.12, table.Rate(domain.CurrencyUSD))
	// RUB was absent from the response and keeps its previous value
	suite.Equal(domain.DefaultRateRUB, table.Rate(domain.CurrencyRUB))
	suite.NotNil(table.UpdatedAt)

	suite.mockSource.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestRefresh_FailureRetainsPreviousTable() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx).Return(nil, errors.New("timeout")).Once()

	suite.service.Refresh(ctx)

	table := suite.service.Snapshot()
	suite.Equal(domain.DefaultRateGBP, table.Rate(domain.CurrencyGBP))
	suite.Nil(table.UpdatedAt)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRateTable", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRefresh_DropsNonPositiveAndUnknownKeys() {
	ctx := context.Background()
	fetched := map[domain.CurrencyCode]float64{
		domain.CurrencyGBP: 0.88,
		domain.CurrencyUSD: -3,
		"XXX":              42,
	}
	suite.mockSource.On("FetchRates", ctx).Return(fetched, nil).Once()
	suite.mockRepo.On("SaveRateTable", ctx, mock.Anything).Return(nil).Once()

	suite.service.Refresh(ctx)

	table := suite.service.Snapshot()
	suite.Equal(0.88, table.Rate(domain.CurrencyGBP))
	suite.Equal(domain.DefaultRateUSD, table.Rate(domain.CurrencyUSD))
	suite.Equal(0.0, table.Rates["XXX"])
}

func (suite *RateServiceTestSuite) TestRefresh_AfterStopIsDiscarded() {
	ctx := context.Background()
	suite.service.Stop()

	suite.service.Refresh(ctx)

	suite.mockSource.AssertNotCalled(suite.T(), "FetchRates", mock.Anything)
	table := suite.service.Snapshot()
	suite.Equal(domain.DefaultRateGBP, table.Rate(domain.CurrencyGBP))
}

func (suite *RateServiceTestSuite) TestListRateHistory_PagesNewestFirst() {
	ctx := context.Background()
	now := time.Now()
	points := []domain.RatePoint{
		{PointID: uuid.NewString(), CurrencyCode: domain.CurrencyUSD, Rate: 1.1, FetchedAt: now.Add(-time.Minute)},
		{PointID: uuid.NewString(), CurrencyCode: domain.CurrencyUSD, Rate: 1.09, FetchedAt: now.Add(-2 * time.Minute)},
	}
	suite.mockRepo.On("ListRateHistory", ctx, domain.CurrencyUSD, 2, mock.AnythingOfType("time.Time")).Return(points, nil).Once()

	got, nextToken, err := suite.service.ListRateHistory(ctx, domain.CurrencyUSD, 2, "")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Require().NotEmpty(nextToken, "full page should carry a continuation token")
	decoded, err := pagination.DecodeDateBasedToken(nextToken)
	suite.Require().NoError(err)
	suite.True(points[1].FetchedAt.Equal(decoded))
}

func (suite *RateServiceTestSuite) TestListRateHistory_PartialPageEndsPagination() {
	ctx := context.Background()
	points := []domain.RatePoint{
		{PointID: uuid.NewString(), CurrencyCode: domain.CurrencyGBP, Rate: 0.86, FetchedAt: time.Now()},
	}
	suite.mockRepo.On("ListRateHistory", ctx, domain.CurrencyGBP, 100, mock.AnythingOfType("time.Time")).Return(points, nil).Once()

	got, nextToken, err := suite.service.ListRateHistory(ctx, domain.CurrencyGBP, 0, "")

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Empty(nextToken)
}

func (suite *RateServiceTestSuite) TestListRateHistory_RejectsBadInput() {
	ctx := context.Background()

	_, _, err := suite.service.ListRateHistory(ctx, "XXX", 10, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.ListRateHistory(ctx, domain.CurrencyUSD, 10, "not-a-token")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "ListRateHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
