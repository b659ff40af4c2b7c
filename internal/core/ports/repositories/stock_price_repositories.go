package repositories

import (
	"context"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
)

// StockPriceReader defines read operations for persisted quotes
type StockPriceReader interface {
	// FindStockPriceBySymbol retrieves the stored quote for a symbol, or
	// apperrors.ErrNotFound when none exists.
	FindStockPriceBySymbol(ctx context.Context, symbol string) (*domain.StockPrice, error)
}

// StockPriceWriter defines write operations for persisted quotes
type StockPriceWriter interface {
	// SaveStockPrice upserts the quote for its symbol.
	SaveStockPrice(ctx context.Context, price domain.StockPrice) error
}

// StockPriceRepositoryFacade combines the persisted quote interfaces
type StockPriceRepositoryFacade interface {
	StockPriceReader
	StockPriceWriter
}
