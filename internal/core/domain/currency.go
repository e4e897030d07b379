package domain

// Currency represents a supported currency in the domain.
// The engine never converts between currencies; the catalog exists so accounts
// and transfers can validate their currency reference and format amounts.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "RWF", "EUR")
	Symbol       string `json:"symbol"`       // e.g., "€"
	Name         string `json:"name"`         // e.g., "Euro"
	Precision    int16  `json:"precision"`    // Display precision, informational only
	AuditFields
}
