package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account kinds. Balance computation
// dispatches exhaustively on this tag, so adding a kind means touching
// every switch over it.
type AccountType string

const (
	AccountTypeNormal     AccountType = "NORMAL"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeCD         AccountType = "CD"
)

var (
	colorPattern       = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	stockSymbolPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)
)

// Account represents a financial account within the core domain.
// Balance is derived state: it is only ever written through UpdateBalance,
// after a calculator has computed it.
type Account struct {
	AccountID    string          `json:"accountID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	Color        string          `json:"color"` // "#RRGGBB"
	CurrencyCode CurrencyCode    `json:"currencyCode"`
	AccountType  AccountType     `json:"accountType"`
	Balance      decimal.Decimal `json:"balance"`
	DisplayOrder *int            `json:"displayOrder,omitempty"` // nil sorts after all ordered accounts

	// Investment accounts only.
	StockSymbol    string           `json:"stockSymbol,omitempty"`
	Shares         *decimal.Decimal `json:"shares,omitempty"`
	InvestedAmount *decimal.Decimal `json:"investedAmount,omitempty"`

	// Certificate-of-deposit accounts only.
	Principal              decimal.Decimal `json:"principal,omitempty"`
	AnnualRate             decimal.Decimal `json:"annualRate,omitempty"` // percent, e.g. 7.5
	TermMonths             int             `json:"termMonths,omitempty"`
	MaturityDate           time.Time       `json:"maturityDate,omitempty"`
	CompoundingFrequency   int             `json:"compoundingFrequency,omitempty"` // periods per year
	EarlyWithdrawalPenalty decimal.Decimal `json:"earlyWithdrawalPenalty,omitempty"`
	WithholdingTaxRate     decimal.Decimal `json:"withholdingTaxRate,omitempty"` // percent

	AuditFields
}

// NewAccountParams carries the caller-supplied fields for NewAccount.
type NewAccountParams struct {
	AccountID      string
	UserID         string
	Name           string
	Color          string
	CurrencyCode   CurrencyCode
	AccountType    AccountType
	InitialBalance decimal.Decimal
	DisplayOrder   *int

	StockSymbol    string
	Shares         *decimal.Decimal
	InvestedAmount *decimal.Decimal

	Principal              decimal.Decimal
	AnnualRate             decimal.Decimal
	TermMonths             int
	MaturityDate           time.Time
	CompoundingFrequency   int
	EarlyWithdrawalPenalty decimal.Decimal
	WithholdingTaxRate     decimal.Decimal
}

// NewAccount constructs a validated Account. The stock symbol is
// uppercase-normalized before validation. An Account that fails its
// invariants is never returned.
func NewAccount(params NewAccountParams, now time.Time, creatorUserID string) (*Account, error) {
	account := &Account{
		AccountID:              params.AccountID,
		UserID:                 params.UserID,
		Name:                   params.Name,
		Color:                  params.Color,
		CurrencyCode:           params.CurrencyCode,
		AccountType:            params.AccountType,
		Balance:                params.InitialBalance,
		DisplayOrder:           params.DisplayOrder,
		StockSymbol:            strings.ToUpper(strings.TrimSpace(params.StockSymbol)),
		Shares:                 params.Shares,
		InvestedAmount:         params.InvestedAmount,
		Principal:              params.Principal,
		AnnualRate:             params.AnnualRate,
		TermMonths:             params.TermMonths,
		MaturityDate:           params.MaturityDate,
		CompoundingFrequency:   params.CompoundingFrequency,
		EarlyWithdrawalPenalty: params.EarlyWithdrawalPenalty,
		WithholdingTaxRate:     params.WithholdingTaxRate,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return account, nil
}

// Validate enforces every domain invariant. It runs at construction and
// after every mutation; an Account must never be observable in a state
// where Validate fails.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	if !colorPattern.MatchString(a.Color) {
		return fmt.Errorf("%w: color %q must be a 6-digit hex string like #1A2B3C", apperrors.ErrValidation, a.Color)
	}
	if !IsSupportedCurrency(a.CurrencyCode) {
		return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, a.CurrencyCode)
	}
	if a.DisplayOrder != nil && *a.DisplayOrder < 0 {
		return fmt.Errorf("%w: display order must not be negative", apperrors.ErrValidation)
	}

	switch a.AccountType {
	case AccountTypeNormal:
		// No extra fields.
	case AccountTypeInvestment:
		if err := a.validateInvestmentFields(); err != nil {
			return err
		}
	case AccountTypeCD:
		if err := a.validateCDFields(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, a.AccountType)
	}
	return nil
}

func (a *Account) validateInvestmentFields() error {
	if a.StockSymbol == "" {
		return fmt.Errorf("%w: investment account requires a stock symbol", apperrors.ErrValidation)
	}
	if !stockSymbolPattern.MatchString(a.StockSymbol) {
		return fmt.Errorf("%w: stock symbol %q must be 1-5 uppercase letters", apperrors.ErrValidation, a.StockSymbol)
	}
	if a.Shares != nil && a.Shares.IsNegative() {
		return fmt.Errorf("%w: shares must not be negative", apperrors.ErrValidation)
	}
	if a.InvestedAmount != nil && a.InvestedAmount.IsNegative() {
		return fmt.Errorf("%w: invested amount must not be negative", apperrors.ErrValidation)
	}
	return nil
}

func (a *Account) validateCDFields() error {
	if !a.Principal.IsPositive() {
		return fmt.Errorf("%w: CD principal must be positive", apperrors.ErrValidation)
	}
	if a.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: CD annual rate must not be negative", apperrors.ErrValidation)
	}
	if a.TermMonths <= 0 {
		return fmt.Errorf("%w: CD term must be at least one month", apperrors.ErrValidation)
	}
	if a.MaturityDate.IsZero() {
		return fmt.Errorf("%w: CD maturity date is required", apperrors.ErrValidation)
	}
	if a.CompoundingFrequency <= 0 {
		return fmt.Errorf("%w: CD compounding frequency must be positive", apperrors.ErrValidation)
	}
	if a.EarlyWithdrawalPenalty.IsNegative() {
		return fmt.Errorf("%w: CD early withdrawal penalty must not be negative", apperrors.ErrValidation)
	}
	if a.WithholdingTaxRate.IsNegative() {
		return fmt.Errorf("%w: CD withholding tax rate must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// IsNormal reports whether the account is a plain pocket-backed account.
func (a *Account) IsNormal() bool { return a.AccountType == AccountTypeNormal }

// IsInvestment reports whether the account tracks a stock position.
func (a *Account) IsInvestment() bool { return a.AccountType == AccountTypeInvestment }

// IsCD reports whether the account is a certificate of deposit.
func (a *Account) IsCD() bool { return a.AccountType == AccountTypeCD }

// UpdateBalance replaces the derived balance. Only balance calculators
// should call this; the full invariant set is re-checked.
func (a *Account) UpdateBalance(newValue decimal.Decimal) error {
	previous := a.Balance
	a.Balance = newValue
	if err := a.Validate(); err != nil {
		a.Balance = previous
		return err
	}
	return nil
}

// Update applies a partial update of the general fields and re-validates.
// Nil pointers leave the field untouched.
func (a *Account) Update(name *string, color *string, currencyCode *CurrencyCode) error {
	snapshot := *a
	if name != nil {
		a.Name = *name
	}
	if color != nil {
		a.Color = *color
	}
	if currencyCode != nil {
		a.CurrencyCode = *currencyCode
	}
	if err := a.Validate(); err != nil {
		*a = snapshot
		return err
	}
	return nil
}

// UpdateInvestmentDetails sets the share count and/or invested amount.
// It is only valid on investment accounts.
func (a *Account) UpdateInvestmentDetails(shares *decimal.Decimal, investedAmount *decimal.Decimal) error {
	if !a.IsInvestment() {
		return fmt.Errorf("%w: cannot set investment details on %s account %s", apperrors.ErrAccountType, a.AccountType, a.AccountID)
	}
	snapshot := *a
	if shares != nil {
		a.Shares = shares
	}
	if investedAmount != nil {
		a.InvestedAmount = investedAmount
	}
	if err := a.Validate(); err != nil {
		*a = snapshot
		return err
	}
	return nil
}

// CalculateInvestmentBalance returns shares * currentPrice without mutating
// the account. Unset or zero shares yield zero.
func (a *Account) CalculateInvestmentBalance(currentPrice decimal.Decimal) (decimal.Decimal, error) {
	if !a.IsInvestment() {
		return decimal.Zero, fmt.Errorf("%w: cannot compute investment balance for %s account %s", apperrors.ErrAccountType, a.AccountType, a.AccountID)
	}
	if currentPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: current price must not be negative", apperrors.ErrValidation)
	}
	if a.Shares == nil || a.Shares.IsZero() {
		return decimal.Zero, nil
	}
	return a.Shares.Mul(currentPrice), nil
}

// UpdateDisplayOrder sets the presentation position.
func (a *Account) UpdateDisplayOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("%w: display order must not be negative", apperrors.ErrValidation)
	}
	a.DisplayOrder = &order
	return nil
}
