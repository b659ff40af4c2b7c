package mapping

import (
	"github.com/pocketfin/pocketfin_app/internal/core/domain"
	"github.com/pocketfin/pocketfin_app/internal/models"
)

// ToDomainPocket converts a model Pocket to a domain Pocket
func ToDomainPocket(m models.Pocket) domain.Pocket {
	return domain.Pocket{
		PocketID:    m.PocketID,
		AccountID:   m.AccountID,
		Name:        m.Name,
		PocketType:  domain.PocketType(m.PocketType),
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPocketSlice converts a slice of model Pockets to domain Pockets
func ToDomainPocketSlice(ms []models.Pocket) []domain.Pocket {
	ds := make([]domain.Pocket, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPocket(m)
	}
	return ds
}

// ToDomainSubPocket converts a model SubPocket to a domain SubPocket
func ToDomainSubPocket(m models.SubPocket) domain.SubPocket {
	return domain.SubPocket{
		SubPocketID: m.SubPocketID,
		PocketID:    m.PocketID,
		Name:        m.Name,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSubPocketSlice converts a slice of model SubPockets to domain SubPockets
func ToDomainSubPocketSlice(ms []models.SubPocket) []domain.SubPocket {
	ds := make([]domain.SubPocket, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubPocket(m)
	}
	return ds
}
