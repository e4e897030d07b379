package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus tracks whether a transfer has been applied to its accounts.
type TransferStatus string

const (
	TransferPending  TransferStatus = "PENDING"
	TransferExecuted TransferStatus = "EXECUTED"
	TransferReversed TransferStatus = "REVERSED"
)

// ErrInvalidTransfer wraps every validation failure of a transfer so callers
// can match the family while the message names the violated sub-condition.
var ErrInvalidTransfer = errors.New("invalid transfer")

// ErrTransferNotExecuted indicates a cancel attempt on a transfer that was
// never executed. This is a programming error in the caller.
var ErrTransferNotExecuted = errors.New("transfer not executed")

// ErrTransferAlreadyReversed indicates a second cancellation attempt.
var ErrTransferAlreadyReversed = errors.New("transfer already reversed")

// Transfer is a balance-neutral relocation of funds between two accounts of
// the same owner and currency.
type Transfer struct {
	TransferID           string          `json:"transferID"` // Primary Key (e.g., UUID)
	OwnerUserID          string          `json:"ownerUserID"`
	SourceAccountID      string          `json:"sourceAccountID"`
	DestinationAccountID string          `json:"destinationAccountID"`
	Amount               decimal.Decimal `json:"amount"`
	CurrencyCode         string          `json:"currencyCode"`
	Date                 time.Time       `json:"date"`
	Note                 string          `json:"note,omitempty"`
	Status               TransferStatus  `json:"status"`
	AuditFields
}

// Validate checks every execution precondition against the two accounts.
// All sub-conditions wrap ErrInvalidTransfer.
func (t *Transfer) Validate(source, dest *Account) error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidTransfer, t.Amount.String())
	}
	if t.SourceAccountID == t.DestinationAccountID {
		return fmt.Errorf("%w: source and destination accounts must differ", ErrInvalidTransfer)
	}
	if source.OwnerUserID != t.OwnerUserID || dest.OwnerUserID != t.OwnerUserID {
		return fmt.Errorf("%w: both accounts must belong to the transfer owner", ErrInvalidTransfer)
	}
	if source.CurrencyCode != t.CurrencyCode || dest.CurrencyCode != t.CurrencyCode {
		return fmt.Errorf("%w: accounts use %s/%s but transfer is in %s",
			ErrInvalidTransfer, source.CurrencyCode, dest.CurrencyCode, t.CurrencyCode)
	}
	if source.CurrentBalance.LessThan(t.Amount) {
		return fmt.Errorf("%w: source balance %s is less than amount %s",
			ErrInvalidTransfer, source.CurrentBalance.String(), t.Amount.String())
	}
	return nil
}

// Execute debits the source and credits the destination. The repository owns
// the transactional boundary making both mutations atomic.
func (t *Transfer) Execute(source, dest *Account, now time.Time) error {
	if t.Status != TransferPending {
		return fmt.Errorf("%w: transfer %s is %s", ErrInvalidTransfer, t.TransferID, t.Status)
	}
	if err := t.Validate(source, dest); err != nil {
		return err
	}
	source.ApplyDelta(t.Amount.Neg())
	dest.ApplyDelta(t.Amount)
	source.LastUpdatedAt = now
	dest.LastUpdatedAt = now
	t.Status = TransferExecuted
	return nil
}

// Cancel performs the exact inverse of Execute: credit source, debit
// destination. Valid only once, and only after execution.
func (t *Transfer) Cancel(source, dest *Account, now time.Time) error {
	switch t.Status {
	case TransferReversed:
		return ErrTransferAlreadyReversed
	case TransferPending:
		return fmt.Errorf("%w: transfer %s", ErrTransferNotExecuted, t.TransferID)
	}
	source.ApplyDelta(t.Amount)
	dest.ApplyDelta(t.Amount.Neg())
	source.LastUpdatedAt = now
	dest.LastUpdatedAt = now
	t.Status = TransferReversed
	return nil
}
