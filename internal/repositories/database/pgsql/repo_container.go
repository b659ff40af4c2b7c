package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		PocketRepo:     newPgxPocketRepository(dbPool),
		SubPocketRepo:  newPgxSubPocketRepository(dbPool),
		MovementRepo:   newPgxMovementRepository(dbPool),
		StockPriceRepo: newPgxStockPriceRepository(dbPool),
	}
}
