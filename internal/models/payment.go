package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a payment row in the database.
type Payment struct {
	PaymentID        string          `db:"payment_id"`
	OwnerUserID      string          `db:"owner_user_id"`
	MovementID       string          `db:"movement_id"`
	Amount           decimal.Decimal `db:"amount"`
	PrincipalPortion decimal.Decimal `db:"principal_portion"`
	InterestPortion  decimal.Decimal `db:"interest_portion"`
	Type             string          `db:"type"`
	Status           string          `db:"status"`
	Date             time.Time       `db:"date"`
	Comment          string          `db:"comment"`
	Reference        string          `db:"reference"`
	AuditFields
}
