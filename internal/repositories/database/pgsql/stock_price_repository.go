package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_app/internal/models"
)

type PgxStockPriceRepository struct {
	BaseRepository
}

// newPgxStockPriceRepository creates a new repository for persisted stock prices.
func newPgxStockPriceRepository(pool *pgxpool.Pool) portsrepo.StockPriceRepositoryFacade {
	return &PgxStockPriceRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxStockPriceRepository implements portsrepo.StockPriceRepositoryFacade
var _ portsrepo.StockPriceRepositoryFacade = (*PgxStockPriceRepository)(nil)

// FindStockPriceBySymbol retrieves the stored quote for a symbol.
func (r *PgxStockPriceRepository) FindStockPriceBySymbol(ctx context.Context, symbol string) (*domain.StockPrice, error) {
	query := `SELECT symbol, price, captured_at FROM stock_prices WHERE symbol = $1;`

	var m models.StockPrice
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(symbol)).Scan(&m.Symbol, &m.Price, &m.CapturedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock price for %s: %w", symbol, err)
	}

	price, err := domain.NewStockPrice(m.Symbol, m.Price, m.CapturedAt, domain.PriceSourceStore)
	if err != nil {
		return nil, fmt.Errorf("stored price for %s is invalid: %w", symbol, err)
	}
	return &price, nil
}

// SaveStockPrice upserts a quote. One row per symbol is kept.
func (r *PgxStockPriceRepository) SaveStockPrice(ctx context.Context, price domain.StockPrice) error {
	query := `
		INSERT INTO stock_prices (symbol, price, captured_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol)
		DO UPDATE SET price = EXCLUDED.price, captured_at = EXCLUDED.captured_at;
	`
	_, err := r.Pool.Exec(ctx, query, price.Symbol, price.Price, price.CapturedAt)
	if err != nil {
		return fmt.Errorf("failed to save stock price for %s: %w", price.Symbol, err)
	}
	return nil
}
