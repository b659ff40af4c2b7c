package services

import (
	"context"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
)

// PriceSvcFacade resolves stock prices through the tiered cache:
// in-process memory, then the persistent store, then the remote provider.
type PriceSvcFacade interface {
	// GetPrice resolves a fresh quote for the symbol (case-insensitive).
	// Remote failures carry apperrors.ErrPriceProvider.
	GetPrice(ctx context.Context, symbol string) (domain.StockPrice, error)

	// ClearLocalCache empties the in-process tier.
	ClearLocalCache()

	// CacheStats returns the number of symbols held in the in-process tier.
	CacheStats() int
}
