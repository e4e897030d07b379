package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtDetails is the variant-specific payload of DEBT_PAYABLE and
// DEBT_RECEIVABLE movements.
type DebtDetails struct {
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	InterestRate       decimal.Decimal `json:"interestRate"` // Percent, two decimals; zero means interest-free
	PrincipalRemaining decimal.Decimal `json:"principalRemaining"`
	LastPaymentDate    *time.Time      `json:"lastPaymentDate,omitempty"`
}

// ComputeInterest returns principal_remaining * rate / 100 rounded to two
// decimals, half away from zero. The rounding mode is pinned by tests; it must
// not change without migrating stored expectations.
func (d *DebtDetails) ComputeInterest() decimal.Decimal {
	if d.InterestRate.IsZero() || d.PrincipalRemaining.IsZero() {
		return decimal.Zero.Round(AmountDecimals)
	}
	hundred := decimal.NewFromInt(100)
	return d.PrincipalRemaining.Mul(d.InterestRate).Div(hundred).Round(AmountDecimals)
}

// IsOverdue reports whether the debt is past due and not fully settled.
func (d *DebtDetails) IsOverdue(status MovementStatus, now time.Time) bool {
	if d.DueDate == nil || status == StatusPaid {
		return false
	}
	return d.DueDate.Before(now)
}

// UpdateAfterPayment reduces the remaining principal by the payment's
// principal portion and records the payment date. The caller recomputes the
// owning movement's status via RegisterSettlement.
func (d *DebtDetails) UpdateAfterPayment(p Payment) {
	d.PrincipalRemaining = d.PrincipalRemaining.Sub(p.PrincipalPortion)
	if d.PrincipalRemaining.IsNegative() {
		d.PrincipalRemaining = decimal.Zero
	}
	paidOn := p.Date
	d.LastPaymentDate = &paidOn
}

// ReverseAfterCancellation restores the principal consumed by a cancelled
// payment. The last payment date is left as-is; history stays auditable.
func (d *DebtDetails) ReverseAfterCancellation(p Payment) {
	d.PrincipalRemaining = d.PrincipalRemaining.Add(p.PrincipalPortion)
}
