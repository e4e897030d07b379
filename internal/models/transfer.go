package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents a transfer row in the database.
type Transfer struct {
	TransferID           string          `db:"transfer_id"`
	OwnerUserID          string          `db:"owner_user_id"`
	SourceAccountID      string          `db:"source_account_id"`
	DestinationAccountID string          `db:"destination_account_id"`
	Amount               decimal.Decimal `db:"amount"`
	CurrencyCode         string          `db:"currency_code"`
	Date                 time.Time       `db:"date"`
	Note                 string          `db:"note"`
	Status               string          `db:"status"`
	AuditFields
}
