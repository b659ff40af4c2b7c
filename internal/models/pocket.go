package models

import (
	"github.com/shopspring/decimal"
)

// PocketType mirrors the domain pocket type tag at the storage layer.
type PocketType string

const (
	PocketNormal PocketType = "NORMAL"
	PocketFixed  PocketType = "FIXED"
)

// Pocket represents a pocket row.
type Pocket struct {
	PocketID   string          `db:"pocket_id"`
	AccountID  string          `db:"account_id"`
	Name       string          `db:"name"`
	PocketType PocketType      `db:"pocket_type"`
	Balance    decimal.Decimal `db:"balance"`
	AuditFields
}

// SubPocket represents a sub-pocket row; its pocket is always fixed-typed.
type SubPocket struct {
	SubPocketID string          `db:"sub_pocket_id"`
	PocketID    string          `db:"pocket_id"`
	Name        string          `db:"name"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
