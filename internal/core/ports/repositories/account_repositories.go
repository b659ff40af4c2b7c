package repositories

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByIDForUser retrieves an account only if it belongs to the
	// given user. A missing account and a foreign-owned account both return
	// apperrors.ErrNotFound.
	FindAccountByIDForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccountsByUser retrieves a paginated list of the user's accounts,
	// ordered by display order (accounts without one last), then name.
	ListAccountsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance persists a freshly computed balance.
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error

	// DeleteAccount permanently removes an account row. Dependents must be
	// gone first; the cascade deleter owns that ordering.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
