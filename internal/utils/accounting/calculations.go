package accounting

import (
	"fmt"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedEffect applies the correct sign to a settled amount based on the
// movement variant. This is the single source of truth for balance semantics;
// both the full recomputation and every incremental update go through it.
//
// INCOME / DEBT_RECEIVABLE -> Positive (+)
// EXPENSE / DEBT_PAYABLE / GIFT -> Negative (-)
func SignedEffect(variant domain.MovementVariant, amount decimal.Decimal) (decimal.Decimal, error) {
	switch variant {
	case domain.MovementIncome, domain.MovementDebtReceivable:
		return amount, nil
	case domain.MovementExpense, domain.MovementDebtPayable, domain.MovementGift:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown movement variant '%s'", variant)
	}
}

// RecomputeBalance derives an account balance from scratch:
// opening balance plus the signed effective amount of every linked movement.
// It exists as a verification and repair tool; the incrementally maintained
// Account.CurrentBalance is the operational source of truth and the two must
// always agree.
func RecomputeBalance(account domain.Account, movements []domain.Movement) (decimal.Decimal, error) {
	balance := account.OpeningBalance
	for _, m := range movements {
		if m.AccountID != account.AccountID {
			return decimal.Zero, fmt.Errorf("movement %s belongs to account %s, not %s",
				m.MovementID, m.AccountID, account.AccountID)
		}
		effect, err := SignedEffect(m.Variant, m.EffectiveAmount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("movement %s: %w", m.MovementID, err)
		}
		balance = balance.Add(effect)
	}
	return balance, nil
}
