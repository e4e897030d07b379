package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils/mapping"
)

const paymentColumns = `payment_id, owner_user_id, movement_id, amount, principal_portion, interest_portion, type, status, date, comment, reference, created_at, created_by, last_updated_at, last_updated_by`

// PgxPaymentRepository implements the payment repository using pgx. Every
// write carries the payment row, the settled movement state and the account
// balance delta through one transaction.
type PgxPaymentRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

func newPgxPaymentRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: NewBaseRepository(pool),
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.OwnerUserID,
		&m.MovementID,
		&m.Amount,
		&m.PrincipalPortion,
		&m.InterestPortion,
		&m.Type,
		&m.Status,
		&m.Date,
		&m.Comment,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	modelPayment, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	domainPayment := mapping.ToDomainPayment(modelPayment)
	return &domainPayment, nil
}

// ListPaymentsByMovementID retrieves all payments recorded against a movement.
func (r *PgxPaymentRepository) ListPaymentsByMovementID(ctx context.Context, movementID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE movement_id = $1 ORDER BY date, created_at;`

	rows, err := r.Pool.Query(ctx, query, movementID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for movement "+movementID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		modelPayment, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainPayment(modelPayment))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

// CountPaymentsByMovementID counts payments referencing a movement.
func (r *PgxPaymentRepository) CountPaymentsByMovementID(ctx context.Context, movementID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE movement_id = $1;`, movementID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count payments for movement "+movementID, err)
	}
	return count, nil
}

// SavePayment persists a confirmed payment, the already settled movement
// state and the signed balance delta as one atomic unit.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, movement domain.Movement, balanceDelta decimal.Decimal) error {
	modelPayment := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.OwnerUserID,
		modelPayment.MovementID,
		modelPayment.Amount,
		modelPayment.PrincipalPortion,
		modelPayment.InterestPortion,
		modelPayment.Type,
		modelPayment.Status,
		modelPayment.Date,
		modelPayment.Comment,
		modelPayment.Reference,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert payment "+modelPayment.PaymentID, err)
	}

	if err := r.updateMovementInTx(ctx, tx, movement); err != nil {
		return err
	}
	if err := r.applyBalanceDelta(ctx, tx, movement, balanceDelta); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// CancelPayment persists a cancellation: the payment's terminal status, the
// reversed movement state and the inverse balance delta.
func (r *PgxPaymentRepository) CancelPayment(ctx context.Context, payment domain.Payment, movement domain.Movement, balanceDelta decimal.Decimal) error {
	modelPayment := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payments
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE payment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.Status,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment "+modelPayment.PaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.updateMovementInTx(ctx, tx, movement); err != nil {
		return err
	}
	if err := r.applyBalanceDelta(ctx, tx, movement, balanceDelta); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// updateMovementInTx writes the movement's settlement state and debt columns
// within the payment's transaction.
func (r *PgxPaymentRepository) updateMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	modelMovement := mapping.ToModelMovement(movement)
	query := `
		UPDATE movements
		SET effective_amount = $2, status = $3, principal_remaining = $4, last_payment_date = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE movement_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.EffectiveAmount,
		modelMovement.Status,
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

// applyBalanceDelta locks the movement's account and shifts its balance.
func (r *PgxPaymentRepository) applyBalanceDelta(ctx context.Context, tx pgx.Tx, movement domain.Movement, balanceDelta decimal.Decimal) error {
	if balanceDelta.IsZero() {
		return nil
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{movement.AccountID}); err != nil {
		return err
	}
	changes := map[string]decimal.Decimal{movement.AccountID: balanceDelta}
	return r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, changes, movement.LastUpdatedBy, movement.LastUpdatedAt)
}
