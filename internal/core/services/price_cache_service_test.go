package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PriceCacheServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockStockPriceRepository
	mockProvider *MockPriceProvider
	service      portssvc.PriceSvcFacade
	now          time.Time
}

func (suite *PriceCacheServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStockPriceRepository)
	suite.mockProvider = new(MockPriceProvider)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewPriceCacheService(
		suite.mockRepo,
		suite.mockProvider,
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_FetchesFromProviderAndPersists() {
	ctx := context.Background()
	value := decimal.NewFromFloat(412.37)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VOO").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchPrice", ctx, "VOO").Return(value, nil).Once()
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(nil).Once()

	price, err := suite.service.GetPrice(ctx, "VOO")

	suite.Require().NoError(err)
	suite.Equal("VOO", price.Symbol)
	suite.True(price.Price.Equal(value))
	suite.Equal(domain.PriceSourceRemote, price.Source)
	suite.Equal(suite.now, price.CapturedAt)
	suite.Equal(1, suite.service.CacheStats())
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_LocalHitSuppressesStoreAndProvider() {
	ctx := context.Background()
	value := decimal.NewFromFloat(412.37)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VOO").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchPrice", ctx, "VOO").Return(value, nil).Once()
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(nil).Once()

	_, err := suite.service.GetPrice(ctx, "VOO")
	suite.Require().NoError(err)

	// Second resolution is served purely from memory.
	price, err := suite.service.GetPrice(ctx, "VOO")

	suite.Require().NoError(err)
	suite.Equal(domain.PriceSourceCache, price.Source)
	suite.True(price.Price.Equal(value))
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindStockPriceBySymbol", 1)
	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchPrice", 1)
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_SymbolIsCaseInsensitive() {
	ctx := context.Background()
	value := decimal.NewFromFloat(231.10)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "AAPL").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchPrice", ctx, "AAPL").Return(value, nil).Once()
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(nil).Once()

	_, err := suite.service.GetPrice(ctx, "aapl")
	suite.Require().NoError(err)

	// "AAPL" and "aapl" resolve to the same cache entry.
	price, err := suite.service.GetPrice(ctx, "AAPL")

	suite.Require().NoError(err)
	suite.Equal("AAPL", price.Symbol)
	suite.Equal(1, suite.service.CacheStats())
	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchPrice", 1)
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_FreshStoreHitSuppressesProvider() {
	ctx := context.Background()
	stored, err := domain.NewStockPrice("VTI", decimal.NewFromFloat(268.90), suite.now.Add(-2*time.Hour), domain.PriceSourceUntagged)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VTI").Return(&stored, nil).Once()

	price, err := suite.service.GetPrice(ctx, "VTI")

	suite.Require().NoError(err)
	suite.Equal(domain.PriceSourceStore, price.Source)
	suite.True(price.Price.Equal(stored.Price))
	suite.Equal(1, suite.service.CacheStats())
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchPrice", mock.Anything, mock.Anything)
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_ExactlyOneDayOldStoreHitIsStillFresh() {
	ctx := context.Background()
	stored, err := domain.NewStockPrice("VTI", decimal.NewFromFloat(268.90), suite.now.Add(-24*time.Hour), domain.PriceSourceUntagged)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VTI").Return(&stored, nil).Once()

	price, err := suite.service.GetPrice(ctx, "VTI")

	suite.Require().NoError(err)
	suite.Equal(domain.PriceSourceStore, price.Source)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchPrice", mock.Anything, mock.Anything)
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_StaleStoreEntryFallsThroughToProvider() {
	ctx := context.Background()
	stale, err := domain.NewStockPrice("VTI", decimal.NewFromFloat(268.90), suite.now.Add(-25*time.Hour), domain.PriceSourceUntagged)
	suite.Require().NoError(err)
	liveValue := decimal.NewFromFloat(271.55)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VTI").Return(&stale, nil).Once()
	suite.mockProvider.On("FetchPrice", ctx, "VTI").Return(liveValue, nil).Once()
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(nil).Once()

	price, err := suite.service.GetPrice(ctx, "VTI")

	suite.Require().NoError(err)
	suite.Equal(domain.PriceSourceRemote, price.Source)
	suite.True(price.Price.Equal(liveValue))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_ProviderFailurePropagates() {
	ctx := context.Background()

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VOO").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchPrice", ctx, "VOO").
		Return(decimal.Zero, apperrors.ErrPriceProvider).Once()

	_, err := suite.service.GetPrice(ctx, "VOO")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPriceProvider)
	suite.Equal(0, suite.service.CacheStats())
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_StoreWriteFailureLeavesNoLocalEntry() {
	ctx := context.Background()
	persistErr := errors.New("connection reset")

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VOO").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchPrice", ctx, "VOO").Return(decimal.NewFromFloat(412.37), nil).Once()
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(persistErr).Once()

	_, err := suite.service.GetPrice(ctx, "VOO")

	suite.Require().Error(err)
	suite.ErrorIs(err, persistErr)
	suite.Equal(0, suite.service.CacheStats())
}

func (suite *PriceCacheServiceTestSuite) TestGetPrice_InvalidSymbolNeverCached() {
	ctx := context.Background()

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "TOOLONG").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchPrice", ctx, "TOOLONG").Return(decimal.NewFromFloat(1), nil).Once()

	_, err := suite.service.GetPrice(ctx, "toolong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.service.CacheStats())
}

func (suite *PriceCacheServiceTestSuite) TestClearLocalCache() {
	ctx := context.Background()

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VOO").Return(nil, apperrors.ErrNotFound)
	suite.mockProvider.On("FetchPrice", ctx, "VOO").Return(decimal.NewFromFloat(412.37), nil)
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(nil)

	_, err := suite.service.GetPrice(ctx, "VOO")
	suite.Require().NoError(err)
	suite.Equal(1, suite.service.CacheStats())

	suite.service.ClearLocalCache()

	suite.Equal(0, suite.service.CacheStats())
}

func (suite *PriceCacheServiceTestSuite) TestWithFreshness_ShortWindowExpiresSooner() {
	ctx := context.Background()
	shortLived := services.NewPriceCacheService(
		suite.mockRepo,
		suite.mockProvider,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithFreshness(time.Hour),
	)

	stale, err := domain.NewStockPrice("VTI", decimal.NewFromFloat(268.90), suite.now.Add(-2*time.Hour), domain.PriceSourceUntagged)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindStockPriceBySymbol", ctx, "VTI").Return(&stale, nil).Once()
	suite.mockProvider.On("FetchPrice", ctx, "VTI").Return(decimal.NewFromFloat(271.55), nil).Once()
	suite.mockRepo.On("SaveStockPrice", ctx, mock.AnythingOfType("domain.StockPrice")).Return(nil).Once()

	price, err := shortLived.GetPrice(ctx, "VTI")

	suite.Require().NoError(err)
	suite.Equal(domain.PriceSourceRemote, price.Source)
	suite.mockProvider.AssertExpectations(suite.T())
}

func TestPriceCacheServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PriceCacheServiceTestSuite))
}
