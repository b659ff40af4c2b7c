package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The stocksymbol binding is a custom validator registered at startup;
// numeric decimal fields are range-checked by the domain layer.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	Color          string             `json:"color" binding:"required,hexcolor"`
	CurrencyCode   string             `json:"currencyCode" binding:"required,oneof=USD MXN COP EUR GBP"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=NORMAL INVESTMENT CD"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	DisplayOrder   *int               `json:"displayOrder" binding:"omitempty,gte=0"`

	// Investment accounts.
	StockSymbol    string           `json:"stockSymbol" binding:"omitempty,stocksymbol"`
	Shares         *decimal.Decimal `json:"shares"`
	InvestedAmount *decimal.Decimal `json:"investedAmount"`

	// Certificate-of-deposit accounts.
	Principal              decimal.Decimal `json:"principal"`
	AnnualRate             decimal.Decimal `json:"annualRate"`
	TermMonths             int             `json:"termMonths" binding:"omitempty,gte=0"`
	MaturityDate           time.Time       `json:"maturityDate"`
	CompoundingFrequency   int             `json:"compoundingFrequency" binding:"omitempty,gte=0"`
	EarlyWithdrawalPenalty decimal.Decimal `json:"earlyWithdrawalPenalty"`
	WithholdingTaxRate     decimal.Decimal `json:"withholdingTaxRate"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name         *string `json:"name"`
	Color        *string `json:"color" binding:"omitempty,hexcolor"`
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,oneof=USD MXN COP EUR GBP"`
}

// UpdateInvestmentDetailsRequest updates the stock position of an
// investment account.
type UpdateInvestmentDetailsRequest struct {
	Shares         *decimal.Decimal `json:"shares"`
	InvestedAmount *decimal.Decimal `json:"investedAmount"`
}

// UpdateDisplayOrderRequest sets the presentation position of an account.
type UpdateDisplayOrderRequest struct {
	DisplayOrder int `json:"displayOrder" binding:"gte=0"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	Name         string             `json:"name"`
	Color        string             `json:"color"`
	CurrencyCode string             `json:"currencyCode"`
	AccountType  domain.AccountType `json:"accountType"`
	Balance      decimal.Decimal    `json:"balance"`
	DisplayOrder *int               `json:"displayOrder,omitempty"`

	StockSymbol    string           `json:"stockSymbol,omitempty"`
	Shares         *decimal.Decimal `json:"shares,omitempty"`
	InvestedAmount *decimal.Decimal `json:"investedAmount,omitempty"`

	Principal              *decimal.Decimal `json:"principal,omitempty"`
	AnnualRate             *decimal.Decimal `json:"annualRate,omitempty"`
	TermMonths             int              `json:"termMonths,omitempty"`
	MaturityDate           *time.Time       `json:"maturityDate,omitempty"`
	CompoundingFrequency   int              `json:"compoundingFrequency,omitempty"`
	EarlyWithdrawalPenalty *decimal.Decimal `json:"earlyWithdrawalPenalty,omitempty"`
	WithholdingTaxRate     *decimal.Decimal `json:"withholdingTaxRate,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Color:         acc.Color,
		CurrencyCode:  string(acc.CurrencyCode),
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		DisplayOrder:  acc.DisplayOrder,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
	if acc.IsInvestment() {
		resp.StockSymbol = acc.StockSymbol
		resp.Shares = acc.Shares
		resp.InvestedAmount = acc.InvestedAmount
	}
	if acc.IsCD() {
		principal := acc.Principal
		rate := acc.AnnualRate
		penalty := acc.EarlyWithdrawalPenalty
		tax := acc.WithholdingTaxRate
		maturity := acc.MaturityDate
		resp.Principal = &principal
		resp.AnnualRate = &rate
		resp.TermMonths = acc.TermMonths
		resp.MaturityDate = &maturity
		resp.CompoundingFrequency = acc.CompoundingFrequency
		resp.EarlyWithdrawalPenalty = &penalty
		resp.WithholdingTaxRate = &tax
	}
	return resp
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
