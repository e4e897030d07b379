package mapping

import (
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		OwnerUserID:    d.OwnerUserID,
		Name:           d.Name,
		Kind:           string(d.Kind),
		CurrencyCode:   d.CurrencyCode,
		Description:    d.Description,
		Number:         d.Number,
		Institution:    d.Institution,
		OpeningBalance: d.OpeningBalance,
		CurrentBalance: d.CurrentBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OwnerUserID:    m.OwnerUserID,
		Name:           m.Name,
		Kind:           domain.AccountKind(m.Kind),
		CurrencyCode:   m.CurrencyCode,
		Description:    m.Description,
		Number:         m.Number,
		Institution:    m.Institution,
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
