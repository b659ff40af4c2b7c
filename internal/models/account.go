package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors the domain account type tag at the storage layer.
type AccountType string

const (
	Normal     AccountType = "NORMAL"
	Investment AccountType = "INVESTMENT"
	CD         AccountType = "CD"
)

// Account represents an account row. Nullable columns use pointers.
type Account struct {
	AccountID    string          `db:"account_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Color        string          `db:"color"`
	CurrencyCode string          `db:"currency_code"`
	AccountType  AccountType     `db:"account_type"`
	Balance      decimal.Decimal `db:"balance"`
	DisplayOrder *int            `db:"display_order"`

	StockSymbol    *string          `db:"stock_symbol"`
	Shares         *decimal.Decimal `db:"shares"`
	InvestedAmount *decimal.Decimal `db:"invested_amount"`

	Principal              *decimal.Decimal `db:"principal"`
	AnnualRate             *decimal.Decimal `db:"annual_rate"`
	TermMonths             *int             `db:"term_months"`
	MaturityDate           *time.Time       `db:"maturity_date"`
	CompoundingFrequency   *int             `db:"compounding_frequency"`
	EarlyWithdrawalPenalty *decimal.Decimal `db:"early_withdrawal_penalty"`
	WithholdingTaxRate     *decimal.Decimal `db:"withholding_tax_rate"`

	AuditFields
}
