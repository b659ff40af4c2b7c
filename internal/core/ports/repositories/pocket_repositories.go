package repositories

import (
	"context"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
)

// PocketReader defines read operations for pocket data
type PocketReader interface {
	// ListPocketsByAccount retrieves every pocket belonging to an account.
	ListPocketsByAccount(ctx context.Context, accountID string) ([]domain.Pocket, error)
}

// PocketWriter defines write operations for pocket data
type PocketWriter interface {
	// DeletePocket permanently removes a pocket. Its sub-pockets must be
	// deleted first.
	DeletePocket(ctx context.Context, pocketID string) error
}

// PocketRepositoryFacade combines all pocket-related repository interfaces
type PocketRepositoryFacade interface {
	PocketReader
	PocketWriter
}

// SubPocketReader defines read operations for sub-pocket data
type SubPocketReader interface {
	// ListSubPocketsByPocket retrieves every sub-pocket of a fixed pocket.
	ListSubPocketsByPocket(ctx context.Context, pocketID string) ([]domain.SubPocket, error)
}

// SubPocketWriter defines write operations for sub-pocket data
type SubPocketWriter interface {
	// DeleteSubPocket permanently removes a sub-pocket.
	DeleteSubPocket(ctx context.Context, subPocketID string) error
}

// SubPocketRepositoryFacade combines all sub-pocket repository interfaces
type SubPocketRepositoryFacade interface {
	SubPocketReader
	SubPocketWriter
}
