package domain_test

import (
	"strings"
	"testing"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseCategoryKind(t *testing.T) {
	for _, valid := range []string{"INCOME", "OUTCOME"} {
		_, err := domain.ParseCategoryKind(valid)
		assert.NoError(t, err, valid)
	}
	_, err := domain.ParseCategoryKind("income")
	assert.ErrorIs(t, err, domain.ErrUnknownCategoryKind)
}

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cat     domain.Category
		wantErr bool
	}{
		{name: "valid", cat: domain.Category{Name: "Groceries", Kind: domain.KindOutcome}},
		{name: "name too short", cat: domain.Category{Name: "G", Kind: domain.KindOutcome}, wantErr: true},
		{name: "name too long", cat: domain.Category{Name: strings.Repeat("a", 101), Kind: domain.KindOutcome}, wantErr: true},
		{name: "hundred chars ok", cat: domain.Category{Name: strings.Repeat("a", 100), Kind: domain.KindIncome}},
		{name: "bad kind", cat: domain.Category{Name: "Salary", Kind: domain.CategoryKind("IN")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
