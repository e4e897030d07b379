package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

func newCategoryService(categoryRepo *MockCategoryRepository, movementRepo *MockMovementRepository) portssvc.CategorySvcFacade {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return services.NewCategoryService(categoryRepo, movementRepo, fixedClock{t: now})
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	movementRepo := new(MockMovementRepository)
	svc := newCategoryService(categoryRepo, movementRepo)
	ctx := context.Background()

	existing := &domain.Category{CategoryID: "cat-1", OwnerUserID: "user-1", Name: "Groceries", Kind: domain.KindOutcome}
	categoryRepo.On("FindCategoryByName", ctx, "user-1", "Groceries").Return(existing, nil)

	_, err := svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Groceries", Kind: "OUTCOME"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	categoryRepo.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
}

func TestCreateCategoryHappyPath(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	movementRepo := new(MockMovementRepository)
	svc := newCategoryService(categoryRepo, movementRepo)
	ctx := context.Background()

	categoryRepo.On("FindCategoryByName", ctx, "user-1", "Salary").Return(nil, apperrors.ErrNotFound)
	categoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil)

	category, err := svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Salary", Kind: "INCOME"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.KindIncome, category.Kind)
	assert.Equal(t, "user-1", category.OwnerUserID)
	assert.NotEmpty(t, category.CategoryID)
}

func TestUpdateCategoryKindBlockedWhileReferenced(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	movementRepo := new(MockMovementRepository)
	svc := newCategoryService(categoryRepo, movementRepo)
	ctx := context.Background()

	category := &domain.Category{CategoryID: "cat-1", OwnerUserID: "user-1", Name: "Misc", Kind: domain.KindOutcome}
	categoryRepo.On("FindCategoryByID", ctx, "cat-1").Return(category, nil)
	movementRepo.On("CountMovementsByCategoryID", ctx, "cat-1").Return(int64(5), nil)

	newKind := "INCOME"
	_, err := svc.UpdateCategory(ctx, "cat-1", dto.UpdateCategoryRequest{Kind: &newKind}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
}

func TestDeleteCategoryWithMovementsIsBlocked(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	movementRepo := new(MockMovementRepository)
	svc := newCategoryService(categoryRepo, movementRepo)
	ctx := context.Background()

	category := &domain.Category{CategoryID: "cat-1", OwnerUserID: "user-1", Name: "Misc", Kind: domain.KindOutcome}
	categoryRepo.On("FindCategoryByID", ctx, "cat-1").Return(category, nil)
	movementRepo.On("CountMovementsByCategoryID", ctx, "cat-1").Return(int64(1), nil)

	err := svc.DeleteCategory(ctx, "cat-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
	categoryRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
}

func TestGetCategoryObscuresForeignOwnership(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	movementRepo := new(MockMovementRepository)
	svc := newCategoryService(categoryRepo, movementRepo)
	ctx := context.Background()

	category := &domain.Category{CategoryID: "cat-1", OwnerUserID: "someone-else", Name: "Misc", Kind: domain.KindOutcome}
	categoryRepo.On("FindCategoryByID", ctx, "cat-1").Return(category, nil)

	_, err := svc.GetCategoryByID(ctx, "cat-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
