package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	movementRepo portsrepo.MovementReader
	clock        portssvc.Clock
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, movementRepo portsrepo.MovementReader, clock portssvc.Clock) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo, movementRepo: movementRepo, clock: clock}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	kind, err := domain.ParseCategoryKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	existing, err := s.categoryRepo.FindCategoryByName(ctx, userID, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for duplicate category name", slog.String("name", req.Name))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("category %q already exists: %w", req.Name, apperrors.ErrDuplicate)
	}

	now := s.clock.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		OwnerUserID: userID,
		Name:        req.Name,
		Kind:        kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string, userID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if category.OwnerUserID != userID {
		s.LogDebug(ctx, "Category belongs to a different user", slog.String("category_id", categoryID))
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", userID))
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.categoryRepo.FindCategoryByName(ctx, userID, *req.Name)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("category %q already exists: %w", *req.Name, apperrors.ErrDuplicate)
		}
		category.Name = *req.Name
		updated = true
	}
	if req.Kind != nil && domain.CategoryKind(*req.Kind) != category.Kind {
		// A kind flip would silently invalidate every movement built on the
		// old kind, so it is blocked while any movement references the category.
		count, err := s.movementRepo.CountMovementsByCategoryID(ctx, categoryID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count movements for category", slog.String("category_id", categoryID))
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("cannot change kind of category with %d movements: %w", count, apperrors.ErrStateConflict)
		}
		kind, err := domain.ParseCategoryKind(*req.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		category.Kind = kind
		updated = true
	}
	if !updated {
		return category, nil
	}

	category.LastUpdatedAt = s.clock.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	if _, err := s.GetCategoryByID(ctx, categoryID, userID); err != nil {
		return err
	}

	count, err := s.movementRepo.CountMovementsByCategoryID(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count movements for category", slog.String("category_id", categoryID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("category has %d movements: %w", count, apperrors.ErrStateConflict)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
