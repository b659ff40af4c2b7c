package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a single money movement against an account and one of its
// pockets. When its account is deleted without hard-deleting history, the
// movement is orphaned and keeps a denormalized snapshot of the names it
// used to resolve through foreign keys.
type Movement struct {
	MovementID  string          `json:"movementID"`
	AccountID   string          `json:"accountID"`
	PocketID    string          `json:"pocketID"`
	SubPocketID string          `json:"subPocketID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	MovementAt  time.Time       `json:"movementAt"`
	Pending     bool            `json:"pending"`
	Orphaned    bool            `json:"orphaned"`

	// Populated only once the movement is orphaned.
	OrphanAccountName     string `json:"orphanAccountName,omitempty"`
	OrphanAccountCurrency string `json:"orphanAccountCurrency,omitempty"`
	OrphanPocketName      string `json:"orphanPocketName,omitempty"`

	AuditFields
}
