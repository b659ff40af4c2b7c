package services_test

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared repository and provider mocks for the service tests.

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, accountID, balance, now)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type MockPocketRepository struct {
	mock.Mock
}

func (m *MockPocketRepository) ListPocketsByAccount(ctx context.Context, accountID string) ([]domain.Pocket, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pocket), args.Error(1)
}

func (m *MockPocketRepository) DeletePocket(ctx context.Context, pocketID string) error {
	args := m.Called(ctx, pocketID)
	return args.Error(0)
}

type MockSubPocketRepository struct {
	mock.Mock
}

func (m *MockSubPocketRepository) ListSubPocketsByPocket(ctx context.Context, pocketID string) ([]domain.SubPocket, error) {
	args := m.Called(ctx, pocketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubPocket), args.Error(1)
}

func (m *MockSubPocketRepository) DeleteSubPocket(ctx context.Context, subPocketID string) error {
	args := m.Called(ctx, subPocketID)
	return args.Error(0)
}

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string) ([]domain.Movement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

func (m *MockMovementRepository) MarkMovementOrphaned(ctx context.Context, movementID string, accountName string, accountCurrency string, pocketName string, now time.Time) error {
	args := m.Called(ctx, movementID, accountName, accountCurrency, pocketName, now)
	return args.Error(0)
}

type MockStockPriceRepository struct {
	mock.Mock
}

func (m *MockStockPriceRepository) FindStockPriceBySymbol(ctx context.Context, symbol string) (*domain.StockPrice, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockPrice), args.Error(1)
}

func (m *MockStockPriceRepository) SaveStockPrice(ctx context.Context, price domain.StockPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

type MockPriceProvider struct {
	mock.Mock
}

func (m *MockPriceProvider) FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) GetPrice(ctx context.Context, symbol string) (domain.StockPrice, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(domain.StockPrice), args.Error(1)
}

func (m *MockPriceService) ClearLocalCache() {
	m.Called()
}

func (m *MockPriceService) CacheStats() int {
	args := m.Called()
	return args.Int(0)
}
