package models

import "github.com/shopspring/decimal"

// Account represents an account row in the database.
type Account struct {
	AccountID      string          `db:"account_id"`
	OwnerUserID    string          `db:"owner_user_id"`
	Name           string          `db:"name"`
	Kind           string          `db:"kind"`
	CurrencyCode   string          `db:"currency_code"`
	Description    string          `db:"description"`
	Number         string          `db:"number"`      // Nullable account number
	Institution    string          `db:"institution"` // Nullable bank/provider name
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"` // Incrementally maintained
	IsActive       bool            `db:"is_active"`
	AuditFields
}
