package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementVariant identifies the kind of financial event a movement records.
type MovementVariant string

const (
	MovementIncome         MovementVariant = "INCOME"
	MovementExpense        MovementVariant = "EXPENSE"
	MovementDebtPayable    MovementVariant = "DEBT_PAYABLE"    // money the owner owes
	MovementDebtReceivable MovementVariant = "DEBT_RECEIVABLE" // money owed to the owner
	MovementGift           MovementVariant = "GIFT"
)

// ErrUnknownMovementVariant indicates a variant value outside the closed enum.
var ErrUnknownMovementVariant = errors.New("unknown movement variant")

// ErrIncompatibleCategory indicates a category whose kind does not match the
// movement variant's required kind.
var ErrIncompatibleCategory = errors.New("category kind incompatible with movement variant")

// ErrExceedsBalance indicates a settlement larger than the movement's
// remaining unsettled amount.
var ErrExceedsBalance = errors.New("amount exceeds remaining balance")

// MovementStatus is derived from (total, effective); it is never stored
// independently of those two amounts.
type MovementStatus string

const (
	StatusUnpaid        MovementStatus = "UNPAID"
	StatusPartiallyPaid MovementStatus = "PARTIALLY_PAID"
	StatusPaid          MovementStatus = "PAID"
)

// variantTraits captures the per-variant behavior the constructors and the
// balance rule dispatch on. A lookup table replaces virtual methods so the
// product-owned defaults stay visible in one place.
type variantTraits struct {
	requiredKind    CategoryKind
	settledOnCreate bool // Income and Gift are constructed already settled
	hasDebtDetails  bool
}

var movementTraits = map[MovementVariant]variantTraits{
	MovementIncome:         {requiredKind: KindIncome, settledOnCreate: true},
	MovementExpense:        {requiredKind: KindOutcome},
	MovementDebtPayable:    {requiredKind: KindOutcome, hasDebtDetails: true},
	MovementDebtReceivable: {requiredKind: KindIncome, hasDebtDetails: true},
	MovementGift:           {requiredKind: KindOutcome, settledOnCreate: true},
}

// ParseMovementVariant validates a raw variant value at the boundary.
func ParseMovementVariant(s string) (MovementVariant, error) {
	if _, ok := movementTraits[MovementVariant(s)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMovementVariant, s)
	}
	return MovementVariant(s), nil
}

// RequiredCategoryKind returns the category kind this variant must reference.
func (v MovementVariant) RequiredCategoryKind() CategoryKind {
	return movementTraits[v].requiredKind
}

// SettledOnCreate reports whether movements of this variant are constructed
// already fully settled (effective = total, status PAID).
func (v MovementVariant) SettledOnCreate() bool {
	return movementTraits[v].settledOnCreate
}

// IsDebt reports whether this variant carries debt details.
func (v MovementVariant) IsDebt() bool {
	return movementTraits[v].hasDebtDetails
}

// Movement represents a single dated financial event affecting one account.
// Debt variants carry an additional DebtDetails payload.
type Movement struct {
	MovementID      string          `json:"movementID"` // Primary Key (e.g., UUID)
	OwnerUserID     string          `json:"ownerUserID"`
	Variant         MovementVariant `json:"variant"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	EffectiveAmount decimal.Decimal `json:"effectiveAmount"` // Cumulative settled amount
	Status          MovementStatus  `json:"status"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"categoryID"`
	AccountID       string          `json:"accountID"`
	ProjectID       string          `json:"projectID,omitempty"` // Optional grouping reference
	ContactID       string          `json:"contactID,omitempty"` // Counterparty for debts/gifts
	Debt            *DebtDetails    `json:"debt,omitempty"`
	AuditFields
}

// DeriveStatus computes the payment status from the two amounts.
func DeriveStatus(total, effective decimal.Decimal) MovementStatus {
	switch {
	case effective.LessThanOrEqual(decimal.Zero):
		return StatusUnpaid
	case effective.LessThan(total):
		return StatusPartiallyPaid
	default:
		return StatusPaid
	}
}

// RecomputeStatus rederives the status from the current amounts. Idempotent.
func (m *Movement) RecomputeStatus() {
	m.Status = DeriveStatus(m.TotalAmount, m.EffectiveAmount)
}

// RemainingAmount is the unsettled part of the movement's total.
func (m *Movement) RemainingAmount() decimal.Decimal {
	return m.TotalAmount.Sub(m.EffectiveAmount)
}

// CheckCategory verifies that the category's kind matches the variant's
// required kind.
func (m *Movement) CheckCategory(c Category) error {
	required := m.Variant.RequiredCategoryKind()
	if c.Kind != required {
		return fmt.Errorf("%w: variant %s requires a %s category, got %s (%s)",
			ErrIncompatibleCategory, m.Variant, required, c.Kind, c.CategoryID)
	}
	return nil
}

// Validate checks structural rules that do not require repository access.
func (m *Movement) Validate() error {
	if _, err := ParseMovementVariant(string(m.Variant)); err != nil {
		return err
	}
	if m.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: total amount must be positive, got %s", ErrInvalidAmount, m.TotalAmount.String())
	}
	if m.EffectiveAmount.IsNegative() {
		return fmt.Errorf("%w: effective amount cannot be negative", ErrInvalidAmount)
	}
	if m.EffectiveAmount.GreaterThan(m.TotalAmount) {
		return fmt.Errorf("%w: effective %s exceeds total %s", ErrExceedsBalance,
			m.EffectiveAmount.String(), m.TotalAmount.String())
	}
	if m.Variant.IsDebt() && m.Debt == nil {
		return fmt.Errorf("movement variant %s requires debt details", m.Variant)
	}
	if !m.Variant.IsDebt() && m.Debt != nil {
		return fmt.Errorf("movement variant %s cannot carry debt details", m.Variant)
	}
	return nil
}

// RegisterSettlement increases the effective amount by the given payment
// amount and rederives the status. The amount must have been validated
// against RemainingAmount beforehand; this guards the invariant anyway.
func (m *Movement) RegisterSettlement(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: settlement must be positive, got %s", ErrInvalidAmount, amount.String())
	}
	if amount.GreaterThan(m.RemainingAmount()) {
		return fmt.Errorf("%w: settlement %s exceeds remaining %s", ErrExceedsBalance,
			amount.String(), m.RemainingAmount().String())
	}
	m.EffectiveAmount = m.EffectiveAmount.Add(amount)
	m.RecomputeStatus()
	return nil
}

// ReverseSettlement decreases the effective amount when a confirmed payment is
// cancelled and rederives the status. Only payment cancellation may call this.
func (m *Movement) ReverseSettlement(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: reversal must be positive, got %s", ErrInvalidAmount, amount.String())
	}
	if amount.GreaterThan(m.EffectiveAmount) {
		return fmt.Errorf("%w: reversal %s exceeds effective %s", ErrExceedsBalance,
			amount.String(), m.EffectiveAmount.String())
	}
	m.EffectiveAmount = m.EffectiveAmount.Sub(amount)
	m.RecomputeStatus()
	return nil
}
