package repositories

import (
	"context"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/core/domain"
)

// MovementReader defines read operations for movement data
type MovementReader interface {
	// ListMovementsByAccount retrieves every movement referencing an account.
	ListMovementsByAccount(ctx context.Context, accountID string) ([]domain.Movement, error)
}

// MovementWriter defines write operations for movement data
type MovementWriter interface {
	// DeleteMovement permanently removes a movement.
	DeleteMovement(ctx context.Context, movementID string) error

	// MarkMovementOrphaned flags a movement as orphaned, attaching the
	// denormalized account and pocket names so the record stays humanly
	// traceable after its account is gone.
	MarkMovementOrphaned(ctx context.Context, movementID string, accountName string, accountCurrency string, pocketName string, now time.Time) error
}

// MovementRepositoryFacade combines all movement repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
