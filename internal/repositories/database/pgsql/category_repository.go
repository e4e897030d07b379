package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils/mapping"
)

// PgxCategoryRepository implements the category repository using pgx.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: NewBaseRepository(pool)}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory persists a new category. The unique (owner_user_id, name)
// constraint surfaces as ErrDuplicate.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, owner_user_id, name, kind, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.OwnerUserID,
		modelCategory.Name,
		modelCategory.Kind,
		modelCategory.CreatedAt,
		modelCategory.CreatedBy,
		modelCategory.LastUpdatedAt,
		modelCategory.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save category "+modelCategory.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, owner_user_id, name, kind, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`
	var modelCategory models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCategory.CategoryID,
		&modelCategory.OwnerUserID,
		&modelCategory.Name,
		&modelCategory.Kind,
		&modelCategory.CreatedAt,
		&modelCategory.CreatedBy,
		&modelCategory.LastUpdatedAt,
		&modelCategory.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category by ID "+categoryID, err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	return &domainCategory, nil
}

// FindCategoryByName retrieves an owner's category by its exact name.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, ownerUserID string, name string) (*domain.Category, error) {
	query := `
		SELECT category_id, owner_user_id, name, kind, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE owner_user_id = $1 AND name = $2;
	`
	var modelCategory models.Category
	err := r.Pool.QueryRow(ctx, query, ownerUserID, name).Scan(
		&modelCategory.CategoryID,
		&modelCategory.OwnerUserID,
		&modelCategory.Name,
		&modelCategory.Kind,
		&modelCategory.CreatedAt,
		&modelCategory.CreatedBy,
		&modelCategory.LastUpdatedAt,
		&modelCategory.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category by name", err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	return &domainCategory, nil
}

// ListCategoriesByOwner retrieves all categories belonging to a user.
func (r *PgxCategoryRepository) ListCategoriesByOwner(ctx context.Context, ownerUserID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, owner_user_id, name, kind, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE owner_user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for user "+ownerUserID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var modelCategory models.Category
		err := rows.Scan(
			&modelCategory.CategoryID,
			&modelCategory.OwnerUserID,
			&modelCategory.Name,
			&modelCategory.Kind,
			&modelCategory.CreatedAt,
			&modelCategory.CreatedBy,
			&modelCategory.LastUpdatedAt,
			&modelCategory.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, mapping.ToDomainCategory(modelCategory))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

// UpdateCategory updates an existing category's details.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, kind = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.Name,
		modelCategory.Kind,
		modelCategory.LastUpdatedAt,
		modelCategory.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update category "+modelCategory.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
