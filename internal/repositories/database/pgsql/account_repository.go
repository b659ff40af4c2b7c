package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_app/internal/models"
	"github.com/pocketfin/pocketfin_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, user_id, name, color, currency_code, account_type, balance, display_order,
	stock_symbol, shares, invested_amount,
	principal, annual_rate, term_months, maturity_date, compounding_frequency, early_withdrawal_penalty, withholding_tax_rate,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.Color,
		&m.CurrencyCode,
		&m.AccountType,
		&m.Balance,
		&m.DisplayOrder,
		&m.StockSymbol,
		&m.Shares,
		&m.InvestedAmount,
		&m.Principal,
		&m.AnnualRate,
		&m.TermMonths,
		&m.MaturityDate,
		&m.CompoundingFrequency,
		&m.EarlyWithdrawalPenalty,
		&m.WithholdingTaxRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Name,
		m.Color,
		m.CurrencyCode,
		m.AccountType,
		m.Balance,
		m.DisplayOrder,
		m.StockSymbol,
		m.Shares,
		m.InvestedAmount,
		m.Principal,
		m.AnnualRate,
		m.TermMonths,
		m.MaturityDate,
		m.CompoundingFrequency,
		m.EarlyWithdrawalPenalty,
		m.WithholdingTaxRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountByIDForUser retrieves an account only when it belongs to the
// given user. Missing and foreign-owned accounts are indistinguishable.
func (r *PgxAccountRepository) FindAccountByIDForUser(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 AND user_id = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s for user: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// ListAccountsByUser retrieves a paginated list of the user's accounts.
// Accounts without a display order sort after all accounts that have one.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY display_order ASC NULLS LAST, name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for user %s: %w", userID, err)
		}
		modelAccounts = append(modelAccounts, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for user %s: %w", userID, rows.Err())
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// UpdateAccount updates an existing account in the database.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, color = $3, currency_code = $4, display_order = $5,
			stock_symbol = $6, shares = $7, invested_amount = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Color,
		m.CurrencyCode,
		m.DisplayOrder,
		m.StockSymbol,
		m.Shares,
		m.InvestedAmount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateAccountBalance persists a freshly computed balance.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, balance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount permanently removes an account row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
