package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement, flattening
// the debt payload into the nullable debt columns.
func ToModelMovement(d domain.Movement) models.Movement {
	m := models.Movement{
		MovementID:      d.MovementID,
		OwnerUserID:     d.OwnerUserID,
		Variant:         string(d.Variant),
		TotalAmount:     d.TotalAmount,
		EffectiveAmount: d.EffectiveAmount,
		Status:          string(d.Status),
		Date:            d.Date,
		Description:     d.Description,
		CategoryID:      d.CategoryID,
		AccountID:       d.AccountID,
		ProjectID:       d.ProjectID,
		ContactID:       d.ContactID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.Debt != nil {
		rate := d.Debt.InterestRate
		principal := d.Debt.PrincipalRemaining
		m.DueDate = d.Debt.DueDate
		m.InterestRate = &rate
		m.PrincipalRemaining = &principal
		m.LastPaymentDate = d.Debt.LastPaymentDate
	}
	return m
}

// ToDomainMovement converts a model Movement to a domain Movement, rebuilding
// the debt payload when the variant carries one.
func ToDomainMovement(m models.Movement) domain.Movement {
	d := domain.Movement{
		MovementID:      m.MovementID,
		OwnerUserID:     m.OwnerUserID,
		Variant:         domain.MovementVariant(m.Variant),
		TotalAmount:     m.TotalAmount,
		EffectiveAmount: m.EffectiveAmount,
		Status:          domain.MovementStatus(m.Status),
		Date:            m.Date,
		Description:     m.Description,
		CategoryID:      m.CategoryID,
		AccountID:       m.AccountID,
		ProjectID:       m.ProjectID,
		ContactID:       m.ContactID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if d.Variant.IsDebt() {
		debt := domain.DebtDetails{
			DueDate:         m.DueDate,
			LastPaymentDate: m.LastPaymentDate,
		}
		if m.InterestRate != nil {
			debt.InterestRate = *m.InterestRate
		} else {
			debt.InterestRate = decimal.Zero
		}
		if m.PrincipalRemaining != nil {
			debt.PrincipalRemaining = *m.PrincipalRemaining
		} else {
			debt.PrincipalRemaining = decimal.Zero
		}
		d.Debt = &debt
	}
	return d
}
