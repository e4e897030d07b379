package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

// CategorySvcFacade exposes category operations scoped to the requesting user.
type CategorySvcFacade interface {
	// CreateCategory creates a category; duplicate names per owner are rejected.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// GetCategoryByID retrieves one of the user's categories.
	GetCategoryByID(ctx context.Context, categoryID string, userID string) (*domain.Category, error)

	// ListCategories retrieves all the user's categories.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory renames a category or changes its kind. Kind changes are
	// rejected while movements requiring the old kind reference it.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)

	// DeleteCategory removes a category with no linked movements.
	DeleteCategory(ctx context.Context, categoryID string, userID string) error
}
