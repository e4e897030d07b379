package mapping

import (
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		OwnerUserID: d.OwnerUserID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Kind:        domain.CategoryKind(m.Kind),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
