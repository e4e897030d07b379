package domain_test

import (
	"testing"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		total     string
		effective string
		want      domain.MovementStatus
	}{
		{name: "nothing settled", total: "100.00", effective: "0", want: domain.StatusUnpaid},
		{name: "partially settled", total: "100.00", effective: "40.00", want: domain.StatusPartiallyPaid},
		{name: "fully settled", total: "100.00", effective: "100.00", want: domain.StatusPaid},
		{name: "one cent short", total: "100.00", effective: "99.99", want: domain.StatusPartiallyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeriveStatus(amt(tt.total), amt(tt.effective)))
		})
	}
}

func TestRecomputeStatus_Idempotent(t *testing.T) {
	m := domain.Movement{
		Variant:         domain.MovementExpense,
		TotalAmount:     amt("80.00"),
		EffectiveAmount: amt("20.00"),
	}
	m.RecomputeStatus()
	first := m.Status
	m.RecomputeStatus()
	assert.Equal(t, first, m.Status)
	assert.Equal(t, domain.StatusPartiallyPaid, m.Status)
}

func TestParseMovementVariant(t *testing.T) {
	for _, valid := range []string{"INCOME", "EXPENSE", "DEBT_PAYABLE", "DEBT_RECEIVABLE", "GIFT"} {
		_, err := domain.ParseMovementVariant(valid)
		assert.NoError(t, err, valid)
	}
	_, err := domain.ParseMovementVariant("LOAN")
	assert.ErrorIs(t, err, domain.ErrUnknownMovementVariant)
}

func TestVariantTraits(t *testing.T) {
	tests := []struct {
		variant domain.MovementVariant
		kind    domain.CategoryKind
		settled bool
		isDebt  bool
	}{
		{domain.MovementIncome, domain.KindIncome, true, false},
		{domain.MovementDebtReceivable, domain.KindIncome, false, true},
		{domain.MovementExpense, domain.KindOutcome, false, false},
		{domain.MovementDebtPayable, domain.KindOutcome, false, true},
		{domain.MovementGift, domain.KindOutcome, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.variant.RequiredCategoryKind())
			assert.Equal(t, tt.settled, tt.variant.SettledOnCreate())
			assert.Equal(t, tt.isDebt, tt.variant.IsDebt())
		})
	}
}

func TestMovement_CheckCategory(t *testing.T) {
	incomeCat := domain.Category{CategoryID: "cat_in", Kind: domain.KindIncome}
	outcomeCat := domain.Category{CategoryID: "cat_out", Kind: domain.KindOutcome}

	expense := domain.Movement{Variant: domain.MovementExpense}
	assert.ErrorIs(t, expense.CheckCategory(incomeCat), domain.ErrIncompatibleCategory)
	assert.NoError(t, expense.CheckCategory(outcomeCat))

	receivable := domain.Movement{Variant: domain.MovementDebtReceivable}
	assert.NoError(t, receivable.CheckCategory(incomeCat))
	assert.ErrorIs(t, receivable.CheckCategory(outcomeCat), domain.ErrIncompatibleCategory)
}

func TestMovement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       domain.Movement
		wantErr bool
	}{
		{
			name: "valid expense",
			m:    domain.Movement{Variant: domain.MovementExpense, TotalAmount: amt("10.00")},
		},
		{
			name:    "zero total",
			m:       domain.Movement{Variant: domain.MovementExpense, TotalAmount: amt("0")},
			wantErr: true,
		},
		{
			name:    "effective above total",
			m:       domain.Movement{Variant: domain.MovementExpense, TotalAmount: amt("10.00"), EffectiveAmount: amt("10.01")},
			wantErr: true,
		},
		{
			name:    "debt without details",
			m:       domain.Movement{Variant: domain.MovementDebtPayable, TotalAmount: amt("10.00")},
			wantErr: true,
		},
		{
			name:    "expense with debt details",
			m:       domain.Movement{Variant: domain.MovementExpense, TotalAmount: amt("10.00"), Debt: &domain.DebtDetails{}},
			wantErr: true,
		},
		{
			name: "valid debt",
			m: domain.Movement{
				Variant:     domain.MovementDebtReceivable,
				TotalAmount: amt("10.00"),
				Debt:        &domain.DebtDetails{PrincipalRemaining: amt("10.00")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMovement_RegisterSettlement(t *testing.T) {
	m := domain.Movement{
		Variant:     domain.MovementDebtPayable,
		TotalAmount: amt("500.00"),
		Status:      domain.StatusUnpaid,
	}

	require.NoError(t, m.RegisterSettlement(amt("450.00")))
	assert.Equal(t, domain.StatusPartiallyPaid, m.Status)
	assert.Equal(t, "50.00", domain.FormatAmount(m.RemainingAmount()))

	// Overpayment leaves the movement untouched.
	err := m.RegisterSettlement(amt("60.00"))
	assert.ErrorIs(t, err, domain.ErrExceedsBalance)
	assert.Equal(t, "450.00", domain.FormatAmount(m.EffectiveAmount))
	assert.Equal(t, domain.StatusPartiallyPaid, m.Status)

	require.NoError(t, m.RegisterSettlement(amt("50.00")))
	assert.Equal(t, domain.StatusPaid, m.Status)

	err = m.RegisterSettlement(amt("0.01"))
	assert.ErrorIs(t, err, domain.ErrExceedsBalance)
}

func TestMovement_ReverseSettlement(t *testing.T) {
	m := domain.Movement{
		Variant:         domain.MovementExpense,
		TotalAmount:     amt("100.00"),
		EffectiveAmount: amt("100.00"),
		Status:          domain.StatusPaid,
	}

	require.NoError(t, m.ReverseSettlement(amt("100.00")))
	assert.Equal(t, domain.StatusUnpaid, m.Status)

	assert.ErrorIs(t, m.ReverseSettlement(amt("0.01")), domain.ErrExceedsBalance)
	assert.ErrorIs(t, m.ReverseSettlement(amt("0")), domain.ErrInvalidAmount)
}
