package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_app/internal/dto"
	"github.com/pocketfin/pocketfin_app/internal/handlers"
	"github.com/pocketfin/pocketfin_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateInvestmentDetails(ctx context.Context, accountID string, req dto.UpdateInvestmentDetailsRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateDisplayOrder(ctx context.Context, accountID string, displayOrder int, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, displayOrder, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CascadeDeleteService ---
type MockCascadeDeleteService struct {
	mock.Mock
}

func (m *MockCascadeDeleteService) DeleteAccountCascade(ctx context.Context, accountID string, deleteMovements bool, userID string) (*dto.CascadeDeleteResult, error) {
	args := m.Called(ctx, accountID, deleteMovements, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CascadeDeleteResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CascadeDeleteSvc = (*MockCascadeDeleteService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockCascadeService *MockCascadeDeleteService
	jwtSecret          string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pfa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccountService = new(MockAccountService)
	suite.mockCascadeService = new(MockCascadeDeleteService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService, suite.mockCascadeService)
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := "user-1"
	expected := &domain.Account{
		AccountID:    "acc-1",
		UserID:       userID,
		Name:         "Checking",
		Color:        "#3366FF",
		CurrencyCode: domain.CurrencyUSD,
		AccountType:  domain.AccountTypeNormal,
		Balance:      decimal.Zero,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Name == "Checking" && req.AccountType == domain.AccountTypeNormal
		}),
		userID,
	).Return(expected, nil).Once()

	body := `{"name":"Checking","color":"#3366FF","currencyCode":"USD","accountType":"NORMAL"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal("Checking", resp.Name)
	suite.Equal(domain.AccountTypeNormal, resp.AccountType)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingTokenRejected() {
	body := `{"name":"Checking","color":"#3366FF","currencyCode":"USD","accountType":"NORMAL"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_ReturnsCascadeCounts() {
	userID := "user-1"
	expected := &dto.CascadeDeleteResult{
		AccountName:       "Checking",
		PocketsDeleted:    3,
		SubPocketsDeleted: 3,
		MovementsAffected: 5,
	}

	suite.mockCascadeService.On("DeleteAccountCascade", mock.Anything, "acc-1", false, userID).
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/accounts/acc-1", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CascadeDeleteResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.PocketsDeleted)
	suite.Equal(3, resp.SubPocketsDeleted)
	suite.Equal(5, resp.MovementsAffected)

	suite.mockCascadeService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_HardDeleteQueryParam() {
	userID := "user-1"
	expected := &dto.CascadeDeleteResult{AccountName: "Checking", MovementsAffected: 2}

	suite.mockCascadeService.On("DeleteAccountCascade", mock.Anything, "acc-1", true, userID).
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/accounts/acc-1?deleteMovements=true", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCascadeService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
