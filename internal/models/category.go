package models

// Category represents a category row in the database.
// (owner_user_id, name) is unique.
type Category struct {
	CategoryID  string `db:"category_id"`
	OwnerUserID string `db:"owner_user_id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"` // INCOME or OUTCOME
	AuditFields
}
