package models

// Currency represents a currency row in the database.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // ISO 4217 code, primary key
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	Precision    int16  `db:"precision"`
	AuditFields
}
