package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement represents a movement row. account_id and pocket_id become NULL
// once the movement is orphaned; the orphan_* columns keep the names.
type Movement struct {
	MovementID  string          `db:"movement_id"`
	AccountID   *string         `db:"account_id"`
	PocketID    *string         `db:"pocket_id"`
	SubPocketID *string         `db:"sub_pocket_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	MovementAt  time.Time       `db:"movement_at"`
	Pending     bool            `db:"pending"`
	Orphaned    bool            `db:"orphaned"`

	OrphanAccountName     *string `db:"orphan_account_name"`
	OrphanAccountCurrency *string `db:"orphan_account_currency"`
	OrphanPocketName      *string `db:"orphan_pocket_name"`

	AuditFields
}
