package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/core/services"
	"github.com/pocketfin/pocketfin_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockAccountRepository
	mockPocketRepo *MockPocketRepository
	mockPriceSvc   *MockPriceService
	service        portssvc.AccountSvcFacade
	now            time.Time
	userID         string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockPocketRepo = new(MockPocketRepository)
	suite.mockPriceSvc = new(MockPriceService)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.userID = uuid.NewString()
	suite.service = services.NewAccountService(
		suite.mockRepo,
		services.WithPocketRepository(suite.mockPocketRepo),
		services.WithPriceService(suite.mockPriceSvc),
		services.WithAccountClock(func() time.Time { return suite.now }),
	)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Test Savings",
		Color:        "#3366FF",
		CurrencyCode: "USD",
		AccountType:  domain.AccountTypeNormal,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(domain.AccountTypeNormal, createdAccount.AccountType)
	suite.Equal(domain.CurrencyUSD, createdAccount.CurrencyCode)
	suite.Equal(suite.userID, createdAccount.CreatedBy)
	suite.Equal(suite.userID, createdAccount.LastUpdatedBy)
	suite.Equal(suite.now, createdAccount.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NormalizesStockSymbol() {
	ctx := context.Background()
	shares := decimal.NewFromInt(10)
	req := dto.CreateAccountRequest{
		Name:         "Index Fund",
		Color:        "#00AA55",
		CurrencyCode: "USD",
		AccountType:  domain.AccountTypeInvestment,
		StockSymbol:  "voo",
		Shares:       &shares,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("VOO", createdAccount.StockSymbol)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ValidationFailureSkipsSave() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Index Fund",
		Color:        "#00AA55",
		CurrencyCode: "USD",
		AccountType:  domain.AccountTypeInvestment,
		// Missing stock symbol.
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_InvestmentBalanceUsesLivePrice() {
	ctx := context.Background()
	shares := decimal.NewFromInt(10)
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Index Fund",
		Color:        "#00AA55",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeInvestment,
		StockSymbol:  "VOO",
		Shares:       &shares,
	}
	quote, err := domain.NewStockPrice("VOO", decimal.NewFromInt(400), suite.now, domain.PriceSourceCache)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()
	suite.mockPriceSvc.On("GetPrice", ctx, "VOO").Return(quote, nil).Once()
	suite.mockRepo.On("UpdateAccountBalance", ctx, "acc-1", mock.AnythingOfType("decimal.Decimal"), suite.now).Return(nil).Once()

	got, err := suite.service.GetAccountByID(ctx, "acc-1", suite.userID)

	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(4000)), "got %s", got.Balance)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPriceSvc.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_PriceFailureKeepsLastKnownBalance() {
	ctx := context.Background()
	shares := decimal.NewFromInt(10)
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Index Fund",
		Color:        "#00AA55",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeInvestment,
		StockSymbol:  "VOO",
		Shares:       &shares,
		Balance:      decimal.NewFromInt(4000),
	}

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()
	suite.mockPriceSvc.On("GetPrice", ctx, "VOO").Return(domain.StockPrice{}, apperrors.ErrPriceProvider).Once()

	got, err := suite.service.GetAccountByID(ctx, "acc-1", suite.userID)

	// The degradation is silent: no error, balance unchanged, and the stale
	// balance is not written back.
	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(4000)), "got %s", got.Balance)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NormalBalanceSumsPockets() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Checking",
		Color:        "#3366FF",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeNormal,
	}
	pockets := []domain.Pocket{
		{PocketID: "p1", Balance: decimal.NewFromInt(1000)},
		{PocketID: "p2", Balance: decimal.NewFromInt(500)},
	}

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()
	suite.mockPocketRepo.On("ListPocketsByAccount", ctx, "acc-1").Return(pockets, nil).Once()
	suite.mockRepo.On("UpdateAccountBalance", ctx, "acc-1", mock.AnythingOfType("decimal.Decimal"), suite.now).Return(nil).Once()

	got, err := suite.service.GetAccountByID(ctx, "acc-1", suite.userID)

	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(1500)), "got %s", got.Balance)
	suite.mockPriceSvc.AssertNotCalled(suite.T(), "GetPrice", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "missing", suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, "missing", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_RefreshesEveryBalance() {
	ctx := context.Background()
	accounts := []domain.Account{
		{
			AccountID:    "acc-1",
			UserID:       suite.userID,
			Name:         "Checking",
			Color:        "#3366FF",
			CurrencyCode: domain.CurrencyUSD,
			AccountType:  domain.AccountTypeNormal,
		},
		{
			AccountID:    "acc-2",
			UserID:       suite.userID,
			Name:         "Savings",
			Color:        "#FF9900",
			CurrencyCode: domain.CurrencyUSD,
			AccountType:  domain.AccountTypeNormal,
		},
	}

	suite.mockRepo.On("ListAccountsByUser", ctx, suite.userID, 20, 0).Return(accounts, nil).Once()
	suite.mockPocketRepo.On("ListPocketsByAccount", ctx, "acc-1").
		Return([]domain.Pocket{{PocketID: "p1", Balance: decimal.NewFromInt(100)}}, nil).Once()
	suite.mockPocketRepo.On("ListPocketsByAccount", ctx, "acc-2").
		Return([]domain.Pocket{}, nil).Once()
	suite.mockRepo.On("UpdateAccountBalance", ctx, "acc-1", mock.AnythingOfType("decimal.Decimal"), suite.now).Return(nil).Once()
	suite.mockRepo.On("UpdateAccountBalance", ctx, "acc-2", mock.AnythingOfType("decimal.Decimal"), suite.now).Return(nil).Once()

	got, err := suite.service.ListAccounts(ctx, suite.userID, 20, 0)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].Balance.Equal(decimal.NewFromInt(100)))
	suite.True(got[1].Balance.IsZero())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Checking",
		Color:        "#3366FF",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeNormal,
	}
	newName := "Everyday Checking"

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, "acc-1", dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("#3366FF", updated.Color)
	suite.Equal(suite.now, updated.LastUpdatedAt)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFieldsIsNoOp() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Checking",
		Color:        "#3366FF",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeNormal,
	}

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, "acc-1", dto.UpdateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateInvestmentDetails_RejectsNormalAccount() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Checking",
		Color:        "#3366FF",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeNormal,
	}
	shares := decimal.NewFromInt(5)

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()

	_, err := suite.service.UpdateInvestmentDetails(ctx, "acc-1", dto.UpdateInvestmentDetailsRequest{Shares: &shares}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountType)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateDisplayOrder_RejectsNegative() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:    "acc-1",
		UserID:       suite.userID,
		Name:         "Checking",
		Color:        "#3366FF",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeNormal,
	}

	suite.mockRepo.On("FindAccountByIDForUser", ctx, "acc-1", suite.userID).Return(account, nil).Once()

	_, err := suite.service.UpdateDisplayOrder(ctx, "acc-1", -1, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
