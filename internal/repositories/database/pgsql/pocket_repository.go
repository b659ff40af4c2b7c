package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocketfin_app/internal/core/ports/repositories"
	"github.com/pocketfin/pocketfin_app/internal/models"
	"github.com/pocketfin/pocketfin_app/internal/utils/mapping"
)

type PgxPocketRepository struct {
	BaseRepository
}

// newPgxPocketRepository creates a new repository for pocket data.
func newPgxPocketRepository(pool *pgxpool.Pool) portsrepo.PocketRepositoryFacade {
	return &PgxPocketRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxPocketRepository implements portsrepo.PocketRepositoryFacade
var _ portsrepo.PocketRepositoryFacade = (*PgxPocketRepository)(nil)

// ListPocketsByAccount retrieves all pockets belonging to an account.
func (r *PgxPocketRepository) ListPocketsByAccount(ctx context.Context, accountID string) ([]domain.Pocket, error) {
	query := `
		SELECT pocket_id, account_id, name, pocket_type, balance,
			created_at, created_by, last_updated_at, last_updated_by
		FROM pockets
		WHERE account_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pockets for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelPockets := []models.Pocket{}
	for rows.Next() {
		var m models.Pocket
		err := rows.Scan(
			&m.PocketID,
			&m.AccountID,
			&m.Name,
			&m.PocketType,
			&m.Balance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pocket row for account %s: %w", accountID, err)
		}
		modelPockets = append(modelPockets, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating pocket rows for account %s: %w", accountID, rows.Err())
	}

	return mapping.ToDomainPocketSlice(modelPockets), nil
}

// DeletePocket permanently removes a pocket row.
func (r *PgxPocketRepository) DeletePocket(ctx context.Context, pocketID string) error {
	query := `DELETE FROM pockets WHERE pocket_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, pocketID)
	if err != nil {
		return fmt.Errorf("failed to delete pocket %s: %w", pocketID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
