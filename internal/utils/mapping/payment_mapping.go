package mapping

import (
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:        d.PaymentID,
		OwnerUserID:      d.OwnerUserID,
		MovementID:       d.MovementID,
		Amount:           d.Amount,
		PrincipalPortion: d.PrincipalPortion,
		InterestPortion:  d.InterestPortion,
		Type:             string(d.Type),
		Status:           string(d.Status),
		Date:             d.Date,
		Comment:          d.Comment,
		Reference:        d.Reference,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:        m.PaymentID,
		OwnerUserID:      m.OwnerUserID,
		MovementID:       m.MovementID,
		Amount:           m.Amount,
		PrincipalPortion: m.PrincipalPortion,
		InterestPortion:  m.InterestPortion,
		Type:             domain.PaymentType(m.Type),
		Status:           domain.PaymentStatus(m.Status),
		Date:             m.Date,
		Comment:          m.Comment,
		Reference:        m.Reference,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
