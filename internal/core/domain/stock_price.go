package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultPriceFreshness is how long a captured quote stays usable.
// A quote aged exactly this much is still fresh; expiry uses strict
// greater-than on the age.
const DefaultPriceFreshness = 24 * time.Hour

// PriceSource tags which tier a quote came from.
type PriceSource string

const (
	PriceSourceCache    PriceSource = "cache"
	PriceSourceStore    PriceSource = "persisted-store"
	PriceSourceRemote   PriceSource = "remote-api"
	PriceSourceUntagged PriceSource = ""
)

// StockPrice is an immutable quote for a stock symbol. "Updating" a quote
// means constructing a new one; callers must never modify one in place.
type StockPrice struct {
	Symbol     string          `json:"symbol"`
	Price      decimal.Decimal `json:"price"`
	CapturedAt time.Time       `json:"capturedAt"`
	Source     PriceSource     `json:"source,omitempty"`
}

// NewStockPrice constructs a validated quote. The symbol is
// uppercase-normalized. A StockPrice can never exist in an invalid state.
func NewStockPrice(symbol string, price decimal.Decimal, capturedAt time.Time, source PriceSource) (StockPrice, error) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if !stockSymbolPattern.MatchString(normalized) {
		return StockPrice{}, fmt.Errorf("%w: stock symbol %q must be 1-5 uppercase letters", apperrors.ErrValidation, symbol)
	}
	if price.IsNegative() {
		return StockPrice{}, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if capturedAt.IsZero() {
		return StockPrice{}, fmt.Errorf("%w: capture timestamp is required", apperrors.ErrValidation)
	}
	return StockPrice{
		Symbol:     normalized,
		Price:      price,
		CapturedAt: capturedAt,
		Source:     source,
	}, nil
}

// Age returns how long ago the quote was captured, as seen at now.
func (p StockPrice) Age(now time.Time) time.Duration {
	return now.Sub(p.CapturedAt)
}

// IsExpiredAt reports whether the quote is older than the default
// freshness window at the given instant. The boundary is inclusive of
// "not yet expired": a quote aged exactly 24h is still fresh.
func (p StockPrice) IsExpiredAt(now time.Time) bool {
	return now.After(p.CapturedAt.Add(DefaultPriceFreshness))
}

// IsFreshAt is the complement of IsExpiredAt.
func (p StockPrice) IsFreshAt(now time.Time) bool {
	return !p.IsExpiredAt(now)
}

// IsExpired checks expiry against the wall clock.
func (p StockPrice) IsExpired() bool { return p.IsExpiredAt(time.Now()) }

// IsFresh checks freshness against the wall clock.
func (p StockPrice) IsFresh() bool { return !p.IsExpired() }

// WithUpdatedPrice returns a new quote for the same symbol, stamped with
// the supplied capture instant. The receiver is unchanged.
func (p StockPrice) WithUpdatedPrice(newPrice decimal.Decimal, capturedAt time.Time) (StockPrice, error) {
	return NewStockPrice(p.Symbol, newPrice, capturedAt, p.Source)
}

// WithSource returns a copy of the quote tagged with the given tier.
func (p StockPrice) WithSource(source PriceSource) StockPrice {
	p.Source = source
	return p
}
