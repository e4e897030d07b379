package domain_test

import (
	"testing"
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDebtDetails_ComputeInterest(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		want      string
	}{
		{name: "five percent of 1000", principal: "1000.00", rate: "5.00", want: "50.00"},
		{name: "zero rate", principal: "1000.00", rate: "0", want: "0.00"},
		{name: "zero principal", principal: "0", rate: "5.00", want: "0.00"},
		{name: "sub-cent rounds half away from zero", principal: "333.33", rate: "1.00", want: "3.33"},
		{name: "exact half cent rounds up", principal: "250.00", rate: "0.33", want: "0.83"}, // 0.825
		{name: "fractional rate", principal: "970.00", rate: "5.00", want: "48.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.DebtDetails{
				PrincipalRemaining: amt(tt.principal),
				InterestRate:       amt(tt.rate),
			}
			got := d.ComputeInterest()
			assert.Equal(t, tt.want, domain.FormatAmount(got))
		})
	}
}

func TestDebtDetails_IsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		due    *time.Time
		status domain.MovementStatus
		want   bool
	}{
		{name: "past due and unpaid", due: &yesterday, status: domain.StatusUnpaid, want: true},
		{name: "past due and partially paid", due: &yesterday, status: domain.StatusPartiallyPaid, want: true},
		{name: "past due but paid", due: &yesterday, status: domain.StatusPaid, want: false},
		{name: "not yet due", due: &tomorrow, status: domain.StatusUnpaid, want: false},
		{name: "no due date", due: nil, status: domain.StatusUnpaid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.DebtDetails{DueDate: tt.due}
			assert.Equal(t, tt.want, d.IsOverdue(tt.status, now))
		})
	}
}

func TestDebtDetails_UpdateAfterPayment(t *testing.T) {
	paidOn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d := domain.DebtDetails{
		PrincipalRemaining: amt("1000.00"),
		InterestRate:       amt("5.00"),
	}
	p := domain.Payment{
		Amount:           amt("80.00"),
		PrincipalPortion: amt("30.00"),
		InterestPortion:  amt("50.00"),
		Date:             paidOn,
	}

	d.UpdateAfterPayment(p)

	assert.Equal(t, "970.00", domain.FormatAmount(d.PrincipalRemaining))
	assert.NotNil(t, d.LastPaymentDate)
	assert.True(t, d.LastPaymentDate.Equal(paidOn))
	// Interest is recomputed from the reduced principal.
	assert.Equal(t, "48.50", domain.FormatAmount(d.ComputeInterest()))
}

func TestDebtDetails_UpdateAfterPayment_ClampsAtZero(t *testing.T) {
	d := domain.DebtDetails{PrincipalRemaining: amt("10.00")}
	d.UpdateAfterPayment(domain.Payment{PrincipalPortion: amt("10.50")})
	assert.Equal(t, "0.00", domain.FormatAmount(d.PrincipalRemaining))
}

func TestDebtDetails_ReverseAfterCancellation(t *testing.T) {
	d := domain.DebtDetails{PrincipalRemaining: amt("970.00")}
	d.ReverseAfterCancellation(domain.Payment{PrincipalPortion: amt("30.00")})
	assert.Equal(t, "1000.00", domain.FormatAmount(d.PrincipalRemaining))
}
