package services

import (
	"context"

	"github.com/pocketfin/pocketfin_app/internal/dto"
)

// CascadeDeleteSvc deletes an account together with every record that
// exists only in relation to it.
type CascadeDeleteSvc interface {
	// DeleteAccountCascade removes the account's sub-pockets, pockets and
	// movements (hard-deleted or orphaned per deleteMovements), then the
	// account itself, returning exact per-step counts. On a mid-cascade
	// failure the partial counts are returned alongside the error; nothing
	// is rolled back.
	DeleteAccountCascade(ctx context.Context, accountID string, deleteMovements bool, userID string) (*dto.CascadeDeleteResult, error)
}
