package mapping

import (
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/pocketfin/pocketfin_app/internal/models"
)

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	d := domain.Movement{
		MovementID:  m.MovementID,
		Amount:      m.Amount,
		Description: m.Description,
		MovementAt:  m.MovementAt,
		Pending:     m.Pending,
		Orphaned:    m.Orphaned,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.AccountID != nil {
		d.AccountID = *m.AccountID
	}
	if m.PocketID != nil {
		d.PocketID = *m.PocketID
	}
	if m.SubPocketID != nil {
		d.SubPocketID = *m.SubPocketID
	}
	if m.OrphanAccountName != nil {
		d.OrphanAccountName = *m.OrphanAccountName
	}
	if m.OrphanAccountCurrency != nil {
		d.OrphanAccountCurrency = *m.OrphanAccountCurrency
	}
	if m.OrphanPocketName != nil {
		d.OrphanPocketName = *m.OrphanPocketName
	}
	return d
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
