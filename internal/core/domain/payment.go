package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType selects how a payment is split between principal and interest.
type PaymentType string

const (
	PaymentPrincipal PaymentType = "PRINCIPAL"
	PaymentInterest  PaymentType = "INTEREST"
	PaymentMixed     PaymentType = "MIXED" // default: interest first, remainder to principal
)

// ParsePaymentType validates a raw payment type at the boundary. An empty
// value defaults to MIXED.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentPrincipal, PaymentInterest, PaymentMixed:
		return PaymentType(s), nil
	case "":
		return PaymentMixed, nil
	default:
		return "", fmt.Errorf("unknown payment type %q", s)
	}
}

// PaymentStatus is the payment state machine. CONFIRMED and CANCELLED are
// terminal except for the single CONFIRMED -> CANCELLED reversal.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// ErrPaymentNotPending indicates a confirm attempt on a non-pending payment.
var ErrPaymentNotPending = errors.New("payment is not pending")

// ErrPaymentAlreadyCancelled indicates a second cancellation attempt.
var ErrPaymentAlreadyCancelled = errors.New("payment already cancelled")

// Payment records a partial or full settlement against a movement. Once
// confirmed it is immutable except for the one-shot cancellation reversal.
type Payment struct {
	PaymentID        string          `json:"paymentID"` // Primary Key (e.g., UUID)
	OwnerUserID      string          `json:"ownerUserID"`
	MovementID       string          `json:"movementID"`
	Amount           decimal.Decimal `json:"amount"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	Type             PaymentType     `json:"type"`
	Status           PaymentStatus   `json:"status"`
	Date             time.Time       `json:"date"`
	Comment          string          `json:"comment,omitempty"`
	Reference        string          `json:"reference,omitempty"`
	AuditFields
}

// Allocate splits the amount between principal and interest according to the
// payment type. For MIXED the interest owed at this moment is served first and
// the remainder reduces principal. A nil debt (plain movement settlement)
// allocates everything to principal.
func (p *Payment) Allocate(debt *DebtDetails) {
	switch p.Type {
	case PaymentPrincipal:
		p.PrincipalPortion = p.Amount
		p.InterestPortion = decimal.Zero
	case PaymentInterest:
		p.InterestPortion = p.Amount
		p.PrincipalPortion = decimal.Zero
	default: // MIXED
		interestDue := decimal.Zero
		if debt != nil {
			interestDue = debt.ComputeInterest()
		}
		p.InterestPortion = decimal.Min(p.Amount, interestDue)
		p.PrincipalPortion = p.Amount.Sub(p.InterestPortion)
	}
}

// Validate checks the payment against the movement it settles.
func (p *Payment) Validate(m *Movement) error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: payment amount must be positive, got %s", ErrInvalidAmount, p.Amount.String())
	}
	if p.Amount.GreaterThan(m.RemainingAmount()) {
		return fmt.Errorf("%w: payment %s exceeds remaining %s on movement %s",
			ErrExceedsBalance, p.Amount.String(), m.RemainingAmount().String(), m.MovementID)
	}
	if !p.PrincipalPortion.Add(p.InterestPortion).Equal(p.Amount) {
		return fmt.Errorf("%w: allocation %s + %s does not sum to %s", ErrInvalidAmount,
			p.PrincipalPortion.String(), p.InterestPortion.String(), p.Amount.String())
	}
	return nil
}

// Confirm moves the payment from PENDING to CONFIRMED.
func (p *Payment) Confirm() error {
	if p.Status != PaymentPending {
		return fmt.Errorf("%w: status is %s", ErrPaymentNotPending, p.Status)
	}
	p.Status = PaymentConfirmed
	return nil
}

// Cancel marks the payment cancelled. Cancelling a confirmed payment is the
// one permitted reversal; cancelling twice is a state error.
func (p *Payment) Cancel() error {
	if p.Status == PaymentCancelled {
		return ErrPaymentAlreadyCancelled
	}
	p.Status = PaymentCancelled
	return nil
}
