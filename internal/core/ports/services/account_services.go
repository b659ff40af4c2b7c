package services

import (
	"context"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/pocketfin/pocketfin_app/internal/dto"
)

// AccountReaderSvc defines read operations on accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the user's accounts with its balance
	// refreshed. A price-fetch failure degrades to the last known balance.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves the user's accounts with refreshed balances.
	// Price-fetch failures degrade to each account's last known balance.
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations on accounts.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	UpdateInvestmentDetails(ctx context.Context, accountID string, req dto.UpdateInvestmentDetailsRequest, userID string) (*domain.Account, error)
	UpdateDisplayOrder(ctx context.Context, accountID string, displayOrder int, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
