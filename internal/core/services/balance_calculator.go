package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const hoursPerYear = 24 * 365.25

// balanceCalculatorService computes account balances. The dispatch over
// the account type tag is exhaustive so all three formulas stay auditable
// in one place.
type balanceCalculatorService struct {
	BaseService
	now func() time.Time
}

// BalanceCalculatorOption is a functional option for the calculator
type BalanceCalculatorOption func(*balanceCalculatorService)

// WithBalanceClock injects the time source used for CD interest accrual.
func WithBalanceClock(now func() time.Time) BalanceCalculatorOption {
	return func(s *balanceCalculatorService) {
		s.now = now
	}
}

// NewBalanceCalculatorService creates the balance calculator
func NewBalanceCalculatorService(options ...BalanceCalculatorOption) portssvc.BalanceCalculatorSvc {
	svc := &balanceCalculatorService{now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure balanceCalculatorService implements the BalanceCalculatorSvc interface
var _ portssvc.BalanceCalculatorSvc = (*balanceCalculatorService)(nil)

// UpdateAccountBalance computes the balance for the account's type and
// writes it onto the account via UpdateBalance. Normal accounts require a
// non-nil pockets slice (empty means zero balance); investment accounts
// require currentPrice.
func (s *balanceCalculatorService) UpdateAccountBalance(ctx context.Context, account *domain.Account, pockets []domain.Pocket, currentPrice *decimal.Decimal) error {
	var balance decimal.Decimal

	switch account.AccountType {
	case domain.AccountTypeCD:
		balance = s.calculateCDBalance(account)

	case domain.AccountTypeInvestment:
		if currentPrice == nil {
			return fmt.Errorf("%w: investment account %s needs a current price", apperrors.ErrPrecondition, account.AccountID)
		}
		computed, err := account.CalculateInvestmentBalance(*currentPrice)
		if err != nil {
			return err
		}
		balance = computed

	case domain.AccountTypeNormal:
		if pockets == nil {
			return fmt.Errorf("%w: normal account %s needs its pockets", apperrors.ErrPrecondition, account.AccountID)
		}
		for _, pocket := range pockets {
			balance = balance.Add(pocket.Balance)
		}

	default:
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, account.AccountType)
	}

	if err := account.UpdateBalance(balance); err != nil {
		return err
	}
	s.LogDebug(ctx, "Account balance computed",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)),
		slog.String("balance", balance.String()))
	return nil
}

// calculateCDBalance compounds the principal over the elapsed term:
// principal * (1 + rate/freq)^(freq * elapsedYears), with the elapsed time
// capped at maturity.
func (s *balanceCalculatorService) calculateCDBalance(account *domain.Account) decimal.Decimal {
	elapsed := s.now().Sub(account.CreatedAt)
	if elapsed <= 0 {
		return account.Principal
	}
	term := time.Duration(float64(account.TermMonths) * (hoursPerYear / 12) * float64(time.Hour))
	if !account.MaturityDate.IsZero() {
		if untilMaturity := account.MaturityDate.Sub(account.CreatedAt); untilMaturity > 0 && untilMaturity < term {
			term = untilMaturity
		}
	}
	if elapsed > term {
		elapsed = term
	}

	years := elapsed.Hours() / hoursPerYear
	freq := float64(account.CompoundingFrequency)
	ratePerPeriod, _ := account.AnnualRate.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(account.CompoundingFrequency))).Float64()
	growth := math.Pow(1+ratePerPeriod, freq*years)
	return account.Principal.Mul(decimal.NewFromFloat(growth)).Round(2)
}

// CalculateInvestmentGains returns currentValue minus the invested amount.
// An unset invested amount counts as zero.
func (s *balanceCalculatorService) CalculateInvestmentGains(account *domain.Account, currentValue decimal.Decimal) (decimal.Decimal, error) {
	if !account.IsInvestment() {
		return decimal.Zero, fmt.Errorf("%w: cannot compute gains for %s account %s", apperrors.ErrAccountType, account.AccountType, account.AccountID)
	}
	invested := decimal.Zero
	if account.InvestedAmount != nil {
		invested = *account.InvestedAmount
	}
	return currentValue.Sub(invested), nil
}

// CalculateGainsPercentage returns gains over invested amount as a
// percentage. A zero invested amount yields 0 rather than dividing by zero.
func (s *balanceCalculatorService) CalculateGainsPercentage(account *domain.Account, currentValue decimal.Decimal) (decimal.Decimal, error) {
	gains, err := s.CalculateInvestmentGains(account, currentValue)
	if err != nil {
		return decimal.Zero, err
	}
	if account.InvestedAmount == nil || account.InvestedAmount.IsZero() {
		return decimal.Zero, nil
	}
	return gains.Div(*account.InvestedAmount).Mul(decimal.NewFromInt(100)), nil
}
