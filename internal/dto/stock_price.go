package dto

import (
	"time"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockPriceResponse defines the data returned for a resolved quote.
type StockPriceResponse struct {
	Symbol     string          `json:"symbol"`
	Price      decimal.Decimal `json:"price"`
	CapturedAt time.Time       `json:"capturedAt"`
	Source     string          `json:"source,omitempty"`
}

// ToStockPriceResponse converts a domain.StockPrice to its response DTO.
func ToStockPriceResponse(p domain.StockPrice) StockPriceResponse {
	return StockPriceResponse{
		Symbol:     p.Symbol,
		Price:      p.Price,
		CapturedAt: p.CapturedAt,
		Source:     string(p.Source),
	}
}

// PriceCacheStatsResponse exposes the in-process tier size for observability.
type PriceCacheStatsResponse struct {
	CachedSymbols int `json:"cachedSymbols"`
}
