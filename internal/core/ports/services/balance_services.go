package services

import (
	"context"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceCalculatorSvc computes and writes account balances. Each account
// type takes a different branch: normal accounts sum their pockets,
// investment accounts need a current price, CD accounts compound interest.
type BalanceCalculatorSvc interface {
	// UpdateAccountBalance computes the balance for the account's type and
	// writes it onto the account. Normal accounts require pockets (nil means
	// not supplied); investment accounts require currentPrice. Missing
	// branch data returns apperrors.ErrPrecondition.
	UpdateAccountBalance(ctx context.Context, account *domain.Account, pockets []domain.Pocket, currentPrice *decimal.Decimal) error

	// CalculateInvestmentGains returns currentValue minus the invested
	// amount (0 when unset).
	CalculateInvestmentGains(account *domain.Account, currentValue decimal.Decimal) (decimal.Decimal, error)

	// CalculateGainsPercentage returns gains over invested amount as a
	// percentage; 0 when nothing was invested.
	CalculateGainsPercentage(account *domain.Account, currentValue decimal.Decimal) (decimal.Decimal, error)
}
