package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils/mapping"
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils/pagination"
)

const movementColumns = `movement_id, owner_user_id, variant, total_amount, effective_amount, status, date, description, category_id, account_id, project_id, contact_id, due_date, interest_rate, principal_remaining, last_payment_date, created_at, created_by, last_updated_at, last_updated_by`

// PgxMovementRepository implements the movement repository using pgx.
// Writes that shift an account balance go through the account repository's
// in-transaction helpers so the movement row and the balance always move
// together.
type PgxMovementRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

func newPgxMovementRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: NewBaseRepository(pool),
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.OwnerUserID,
		&m.Variant,
		&m.TotalAmount,
		&m.EffectiveAmount,
		&m.Status,
		&m.Date,
		&m.Description,
		&m.CategoryID,
		&m.AccountID,
		&m.ProjectID,
		&m.ContactID,
		&m.DueDate,
		&m.InterestRate,
		&m.PrincipalRemaining,
		&m.LastPaymentDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveMovement persists a movement and, when the balance delta is non-zero
// (settled-on-create variants), applies it to the owning account inside the
// same transaction.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement, balanceDelta decimal.Decimal) error {
	modelMovement := mapping.ToModelMovement(movement)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.OwnerUserID,
		modelMovement.Variant,
		modelMovement.TotalAmount,
		modelMovement.EffectiveAmount,
		modelMovement.Status,
		modelMovement.Date,
		modelMovement.Description,
		modelMovement.CategoryID,
		modelMovement.AccountID,
		modelMovement.ProjectID,
		modelMovement.ContactID,
		modelMovement.DueDate,
		modelMovement.InterestRate,
		modelMovement.PrincipalRemaining,
		modelMovement.LastPaymentDate,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
		modelMovement.LastUpdatedAt,
		modelMovement.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert movement "+modelMovement.MovementID, err)
	}

	if !balanceDelta.IsZero() {
		if err := r.applyBalanceDelta(ctx, tx, movement, balanceDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// applyBalanceDelta locks the owning account and shifts its balance.
func (r *PgxMovementRepository) applyBalanceDelta(ctx context.Context, tx pgx.Tx, movement domain.Movement, balanceDelta decimal.Decimal) error {
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{movement.AccountID}); err != nil {
		return err
	}
	changes := map[string]decimal.Decimal{movement.AccountID: balanceDelta}
	return r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, changes, movement.LastUpdatedBy, movement.LastUpdatedAt)
}

// FindMovementByID retrieves a movement with its debt payload when present.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1;`

	modelMovement, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find movement by ID "+movementID, err)
	}

	domainMovement := mapping.ToDomainMovement(modelMovement)
	return &domainMovement, nil
}

// FindMovementsByAccountID retrieves the full movement history of an account.
// Balance verification replays this list against the opening balance.
func (r *PgxMovementRepository) FindMovementsByAccountID(ctx context.Context, accountID string) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE account_id = $1 ORDER BY date, created_at;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for account "+accountID, err)
	}
	defer rows.Close()

	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]domain.Movement, error) {
	movements := []domain.Movement{}
	for rows.Next() {
		modelMovement, err := scanMovement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		movements = append(movements, mapping.ToDomainMovement(modelMovement))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows", err)
	}
	return movements, nil
}

// ListMovementsByAccount retrieves a page of an account's movements ordered
// by date descending, using (date, created_at) token-based pagination.
func (r *PgxMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + movementColumns + ` FROM movements WHERE account_id = $1`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	args := []interface{}{accountID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query movement page for account "+accountID, err)
	}
	defer rows.Close()

	movements, err := collectMovements(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(movements) > limit {
		last := movements[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		movements = movements[:limit]
	}
	return movements, nextTokenVal, nil
}

// CountMovementsByAccountID counts movements referencing an account.
func (r *PgxMovementRepository) CountMovementsByAccountID(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE account_id = $1;`, accountID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count movements for account "+accountID, err)
	}
	return count, nil
}

// CountMovementsByCategoryID counts movements referencing a category.
func (r *PgxMovementRepository) CountMovementsByCategoryID(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE category_id = $1;`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count movements for category "+categoryID, err)
	}
	return count, nil
}

// CountMovementsByCategoryAndVariants counts a category's movements of the
// given variants. Used to guard category kind changes.
func (r *PgxMovementRepository) CountMovementsByCategoryAndVariants(ctx context.Context, categoryID string, variants []domain.MovementVariant) (int64, error) {
	variantStrings := make([]string, len(variants))
	for i, v := range variants {
		variantStrings[i] = string(v)
	}

	var count int64
	query := `SELECT COUNT(*) FROM movements WHERE category_id = $1 AND variant = ANY($2);`
	err := r.Pool.QueryRow(ctx, query, categoryID, variantStrings).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count movements for category "+categoryID, err)
	}
	return count, nil
}

// ListDebtsByOwner retrieves all debt movements of one direction for a user,
// oldest due date first.
func (r *PgxMovementRepository) ListDebtsByOwner(ctx context.Context, ownerUserID string, variant domain.MovementVariant) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE owner_user_id = $1 AND variant = $2
		ORDER BY due_date NULLS LAST, date;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID, string(variant))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debts for user "+ownerUserID, err)
	}
	defer rows.Close()

	return collectMovements(rows)
}

// SumRemainingByVariant totals the unsettled remainder over a user's
// movements of one variant.
func (r *PgxMovementRepository) SumRemainingByVariant(ctx context.Context, ownerUserID string, variant domain.MovementVariant) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount - effective_amount), 0)
		FROM movements
		WHERE owner_user_id = $1 AND variant = $2;
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, ownerUserID, string(variant)).Scan(&sum)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum remaining amounts for user "+ownerUserID, err)
	}
	return sum, nil
}

// UpdateMovement updates a movement's mutable fields and debt columns.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	modelMovement := mapping.ToModelMovement(movement)
	query := `
		UPDATE movements
		SET total_amount = $2, effective_amount = $3, status = $4, date = $5, description = $6, category_id = $7,
		    due_date = $8, interest_rate = $9, principal_remaining = $10, last_payment_date = $11,
		    last_updated_at = $12, last_updated_by = $13
		WHERE movement_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.TotalAmount,
		modelMovement.EffectiveAmount,
		modelMovement.Status,
		modelMovement.Date,
		modelMovement.Description,
		modelMovement.CategoryID,
		modelMovement.DueDate,
		modelMovement.InterestRate,
		modelMovement.PrincipalRemaining,
		modelMovement.LastPaymentDate,
		modelMovement.LastUpdatedAt,
		modelMovement.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update movement "+modelMovement.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovement removes a movement, reverses its balance effect and cascades
// its payments when requested, all in one transaction.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movement domain.Movement, balanceDelta decimal.Decimal, cascadePayments bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if cascadePayments {
		if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE movement_id = $1;`, movement.MovementID); err != nil {
			return apperrors.NewAppError(500, "failed to delete payments for movement "+movement.MovementID, err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM movements WHERE movement_id = $1;`, movement.MovementID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete movement "+movement.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if !balanceDelta.IsZero() {
		if err := r.applyBalanceDelta(ctx, tx, movement, balanceDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
