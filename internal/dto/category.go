package dto

import (
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Kind string `json:"kind" binding:"required,oneof=INCOME OUTCOME"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	Kind *string `json:"kind" binding:"omitempty,oneof=INCOME OUTCOME"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Name       string              `json:"name"`
	Kind       domain.CategoryKind `json:"kind"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Kind:       c.Kind,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of categories to DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}
