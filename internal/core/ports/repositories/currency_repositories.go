package repositories

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CurrencyReader defines read operations for the currency catalog
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its ISO-style code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the currency catalog
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
