package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// Every statement in this package is a single round trip, so repositories
// execute directly on the pool.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
