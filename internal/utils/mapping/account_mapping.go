package mapping

import (
	"strings"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/pocketfin/pocketfin_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAccount converts a domain Account to a model Account. Type-specific
// fields are stored as NULL for account types that do not use them.
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:    d.AccountID,
		UserID:       d.UserID,
		Name:         d.Name,
		Color:        d.Color,
		CurrencyCode: string(d.CurrencyCode),
		AccountType:  models.AccountType(d.AccountType),
		Balance:      d.Balance,
		DisplayOrder: d.DisplayOrder,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.IsInvestment() {
		symbol := d.StockSymbol
		m.StockSymbol = &symbol
		m.Shares = d.Shares
		m.InvestedAmount = d.InvestedAmount
	}
	if d.IsCD() {
		principal := d.Principal
		rate := d.AnnualRate
		term := d.TermMonths
		maturity := d.MaturityDate
		freq := d.CompoundingFrequency
		penalty := d.EarlyWithdrawalPenalty
		tax := d.WithholdingTaxRate
		m.Principal = &principal
		m.AnnualRate = &rate
		m.TermMonths = &term
		m.MaturityDate = &maturity
		m.CompoundingFrequency = &freq
		m.EarlyWithdrawalPenalty = &penalty
		m.WithholdingTaxRate = &tax
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:    m.AccountID,
		UserID:       m.UserID,
		Name:         m.Name,
		Color:        m.Color,
		CurrencyCode: domain.CurrencyCode(m.CurrencyCode),
		AccountType:  domain.AccountType(m.AccountType),
		Balance:      m.Balance,
		DisplayOrder: m.DisplayOrder,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.StockSymbol != nil {
		d.StockSymbol = strings.ToUpper(*m.StockSymbol)
	}
	d.Shares = m.Shares
	d.InvestedAmount = m.InvestedAmount
	d.Principal = derefDecimal(m.Principal)
	d.AnnualRate = derefDecimal(m.AnnualRate)
	d.TermMonths = derefInt(m.TermMonths)
	d.MaturityDate = derefTime(m.MaturityDate)
	d.CompoundingFrequency = derefInt(m.CompoundingFrequency)
	d.EarlyWithdrawalPenalty = derefDecimal(m.EarlyWithdrawalPenalty)
	d.WithholdingTaxRate = derefDecimal(m.WithholdingTaxRate)
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

func derefDecimal(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefTime(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
