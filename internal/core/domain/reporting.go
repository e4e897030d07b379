package domain

import (
	"github.com/shopspring/decimal"
)

// DebtBalance summarises a user's outstanding debts in both directions.
// Totals are remaining amounts (total - effective), not original totals.
type DebtBalance struct {
	PayableTotal    decimal.Decimal `json:"payableTotal"`    // what the user still owes
	ReceivableTotal decimal.Decimal `json:"receivableTotal"` // what is still owed to the user
	Net             decimal.Decimal `json:"net"`             // receivable - payable
}
