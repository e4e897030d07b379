package domain_test

import (
	"testing"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain integer", input: "100", want: "100.00"},
		{name: "two decimals", input: "12.34", want: "12.34"},
		{name: "one decimal", input: "0.5", want: "0.50"},
		{name: "negative amount", input: "-42.10", want: "-42.10"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "three decimals rejected", input: "1.005", wantErr: true},
		{name: "scientific sub-cent rejected", input: "1e-3", wantErr: true},
		{name: "not a number", input: "12,34", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.FormatAmount(got))
		})
	}
}

func TestValidateAmountPrecision(t *testing.T) {
	assert.NoError(t, domain.ValidateAmountPrecision(decimal.RequireFromString("19.99")))
	assert.ErrorIs(t, domain.ValidateAmountPrecision(decimal.RequireFromString("19.999")), domain.ErrInvalidAmount)
}

func TestFormatAmount_AlwaysTwoDecimals(t *testing.T) {
	assert.Equal(t, "7.00", domain.FormatAmount(decimal.NewFromInt(7)))
	assert.Equal(t, "7.10", domain.FormatAmount(decimal.RequireFromString("7.1")))
}
