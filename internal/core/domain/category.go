package domain

import (
	"errors"
	"fmt"
)

// CategoryKind classifies a category as money coming in or going out.
type CategoryKind string

const (
	KindIncome  CategoryKind = "INCOME"
	KindOutcome CategoryKind = "OUTCOME"
)

// ErrUnknownCategoryKind indicates a kind value outside the closed enum.
var ErrUnknownCategoryKind = errors.New("unknown category kind")

// ParseCategoryKind validates a raw kind value at the boundary.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch CategoryKind(s) {
	case KindIncome, KindOutcome:
		return CategoryKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategoryKind, s)
	}
}

const (
	categoryNameMinLen = 2
	categoryNameMaxLen = 100
)

// Category classifies movements. Its kind gates which movement variants may
// reference it (see MovementVariant.RequiredCategoryKind).
type Category struct {
	CategoryID  string       `json:"categoryID"` // Primary Key (e.g., UUID)
	OwnerUserID string       `json:"ownerUserID"`
	Name        string       `json:"name"` // Unique per owner
	Kind        CategoryKind `json:"kind"`
	AuditFields
}

// Validate checks structural rules that do not require repository access.
func (c Category) Validate() error {
	if len(c.Name) < categoryNameMinLen || len(c.Name) > categoryNameMaxLen {
		return fmt.Errorf("category name must be between %d and %d characters", categoryNameMinLen, categoryNameMaxLen)
	}
	if _, err := ParseCategoryKind(string(c.Kind)); err != nil {
		return err
	}
	return nil
}
