package domain

import (
	"github.com/shopspring/decimal"
)

// PocketType distinguishes plain pockets from fixed ones. Only fixed
// pockets may own sub-pockets.
type PocketType string

const (
	PocketTypeNormal PocketType = "NORMAL"
	PocketTypeFixed  PocketType = "FIXED"
)

// Pocket is a named partition of an account's money. A pocket belongs to
// exactly one account.
type Pocket struct {
	PocketID   string          `json:"pocketID"`
	AccountID  string          `json:"accountID"`
	Name       string          `json:"name"`
	PocketType PocketType      `json:"pocketType"`
	Balance    decimal.Decimal `json:"balance"` // may be negative
	AuditFields
}

// IsFixed reports whether the pocket may own sub-pockets.
func (p *Pocket) IsFixed() bool { return p.PocketType == PocketTypeFixed }

// SubPocket is a partition of a fixed pocket.
type SubPocket struct {
	SubPocketID string          `json:"subPocketID"`
	PocketID    string          `json:"pocketID"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
