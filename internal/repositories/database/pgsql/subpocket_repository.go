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

type PgxSubPocketRepository struct {
	BaseRepository
}

// newPgxSubPocketRepository creates a new repository for sub-pocket data.
func newPgxSubPocketRepository(pool *pgxpool.Pool) portsrepo.SubPocketRepositoryFacade {
	return &PgxSubPocketRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxSubPocketRepository implements portsrepo.SubPocketRepositoryFacade
var _ portsrepo.SubPocketRepositoryFacade = (*PgxSubPocketRepository)(nil)

// ListSubPocketsByPocket retrieves all sub-pockets belonging to a pocket.
func (r *PgxSubPocketRepository) ListSubPocketsByPocket(ctx context.Context, pocketID string) ([]domain.SubPocket, error) {
	query := `
		SELECT sub_pocket_id, pocket_id, name, balance,
			created_at, created_by, last_updated_at, last_updated_by
		FROM sub_pockets
		WHERE pocket_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, pocketID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-pockets for pocket %s: %w", pocketID, err)
	}
	defer rows.Close()

	modelSubPockets := []models.SubPocket{}
	for rows.Next() {
		var m models.SubPocket
		err := rows.Scan(
			&m.SubPocketID,
			&m.PocketID,
			&m.Name,
			&m.Balance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sub-pocket row for pocket %s: %w", pocketID, err)
		}
		modelSubPockets = append(modelSubPockets, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sub-pocket rows for pocket %s: %w", pocketID, rows.Err())
	}

	return mapping.ToDomainSubPocketSlice(modelSubPockets), nil
}

// DeleteSubPocket permanently removes a sub-pocket row.
func (r *PgxSubPocketRepository) DeleteSubPocket(ctx context.Context, subPocketID string) error {
	query := `DELETE FROM sub_pockets WHERE sub_pocket_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, subPocketID)
	if err != nil {
		return fmt.Errorf("failed to delete sub-pocket %s: %w", subPocketID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
