package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPrice represents a persisted quote row, keyed by symbol.
type StockPrice struct {
	Symbol     string          `db:"symbol"`
	Price      decimal.Decimal `db:"price"`
	CapturedAt time.Time       `db:"captured_at"`
}
