package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CurrencySvcFacade exposes read access to the currency catalog.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
