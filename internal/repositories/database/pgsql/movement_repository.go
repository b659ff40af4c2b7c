package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_app/internal/models"
	"github.com/pocketfin/pocketfin_app/internal/utils/mapping"
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// ListMovementsByAccount retrieves all movements referencing an account.
func (r *PgxMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string) ([]domain.Movement, error) {
	query := `
		SELECT movement_id, account_id, pocket_id, sub_pocket_id, amount, description,
			movement_at, pending, orphaned, orphan_account_name, orphan_account_currency, orphan_pocket_name,
			created_at, created_by, last_updated_at, last_updated_by
		FROM movements
		WHERE account_id = $1
		ORDER BY movement_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelMovements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		err := rows.Scan(
			&m.MovementID,
			&m.AccountID,
			&m.PocketID,
			&m.SubPocketID,
			&m.Amount,
			&m.Description,
			&m.MovementAt,
			&m.Pending,
			&m.Orphaned,
			&m.OrphanAccountName,
			&m.OrphanAccountCurrency,
			&m.OrphanPocketName,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row for account %s: %w", accountID, err)
		}
		modelMovements = append(modelMovements, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating movement rows for account %s: %w", accountID, rows.Err())
	}

	return mapping.ToDomainMovementSlice(modelMovements), nil
}

// DeleteMovement permanently removes a movement row.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	query := `DELETE FROM movements WHERE movement_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, movementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkMovementOrphaned detaches a movement from its account and pocket while
// preserving the names it was attached under, so history stays readable.
func (r *PgxMovementRepository) MarkMovementOrphaned(ctx context.Context, movementID string, accountName string, accountCurrency string, pocketName string, now time.Time) error {
	query := `
		UPDATE movements
		SET orphaned = TRUE,
			account_id = NULL,
			pocket_id = NULL,
			sub_pocket_id = NULL,
			orphan_account_name = $2,
			orphan_account_currency = $3,
			orphan_pocket_name = $4,
			last_updated_at = $5
		WHERE movement_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, movementID, accountName, accountCurrency, pocketName, now)
	if err != nil {
		return fmt.Errorf("failed to orphan movement %s: %w", movementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
