package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind describes what the account physically is. Informational; the
// balance rule does not depend on it.
type AccountKind string

const (
	AccountCash        AccountKind = "CASH"
	AccountBank        AccountKind = "BANK"
	AccountMobileMoney AccountKind = "MOBILE_MONEY"
	AccountSavings     AccountKind = "SAVINGS"
	AccountOther       AccountKind = "OTHER"
)

// Account holds a running balance in a single currency. The balance is
// mutated only through movement, payment and transfer operations; the
// incrementally maintained CurrentBalance is the source of truth and the full
// recomputation from movements is a verification tool (see
// accounting.RecomputeBalance).
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (e.g., UUID)
	OwnerUserID    string          `json:"ownerUserID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CurrencyCode   string          `json:"currencyCode"`
	Kind           AccountKind     `json:"kind"`
	Number         string          `json:"number,omitempty"`      // Account number at the institution
	Institution    string          `json:"institution,omitempty"` // Bank / operator name
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// ApplyDelta shifts the running balance by a signed amount. It must agree
// with a full recomputation from movement history; the pairing is enforced by
// the balance equivalence tests and checked at runtime by VerifyBalance.
func (a *Account) ApplyDelta(delta decimal.Decimal) {
	a.CurrentBalance = a.CurrentBalance.Add(delta)
}
