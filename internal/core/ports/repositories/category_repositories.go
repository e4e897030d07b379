package repositories

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryByName retrieves an owner's category by its exact name.
	// Returns apperrors.ErrNotFound when no such category exists.
	FindCategoryByName(ctx context.Context, ownerUserID string, name string) (*domain.Category, error)

	// ListCategoriesByOwner retrieves all categories belonging to a user.
	ListCategoriesByOwner(ctx context.Context, ownerUserID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. The service guarantees beforehand
	// that no movements reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
