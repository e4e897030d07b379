package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement represents a movement row in the database. Debt columns are null
// for non-debt variants; the mapper folds them into the debt payload.
type Movement struct {
	MovementID      string          `db:"movement_id"`
	OwnerUserID     string          `db:"owner_user_id"`
	Variant         string          `db:"variant"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	EffectiveAmount decimal.Decimal `db:"effective_amount"`
	Status          string          `db:"status"`
	Date            time.Time       `db:"date"`
	Description     string          `db:"description"`
	CategoryID      string          `db:"category_id"`
	AccountID       string          `db:"account_id"`
	ProjectID       string          `db:"project_id"` // Nullable
	ContactID       string          `db:"contact_id"` // Nullable

	// Debt payload, only populated for DEBT_PAYABLE / DEBT_RECEIVABLE.
	DueDate            *time.Time       `db:"due_date"`
	InterestRate       *decimal.Decimal `db:"interest_rate"`
	PrincipalRemaining *decimal.Decimal `db:"principal_remaining"`
	LastPaymentDate    *time.Time       `db:"last_payment_date"`

	AuditFields
}
