package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceProvider fetches the current price for a stock symbol from a remote
// market-data API. Implementations wrap failures (bad symbol, rate limit,
// transport) in apperrors.ErrPriceProvider.
type PriceProvider interface {
	FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}
