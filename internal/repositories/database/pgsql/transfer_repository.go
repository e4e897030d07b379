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

const transferColumns = `transfer_id, owner_user_id, source_account_id, destination_account_id, amount, currency_code, date, note, status, created_at, created_by, last_updated_at, last_updated_by`

// PgxTransferRepository implements the transfer repository using pgx. Both
// writes lock the two accounts through the account repository's helpers and
// move the transfer row and both balances in one transaction.
type PgxTransferRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

func newPgxTransferRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: NewBaseRepository(pool),
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

func scanTransfer(row pgx.Row) (models.Transfer, error) {
	var m models.Transfer
	err := row.Scan(
		&m.TransferID,
		&m.OwnerUserID,
		&m.SourceAccountID,
		&m.DestinationAccountID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Date,
		&m.Note,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransfer persists an executed transfer and applies the debit/credit
// pair to the two accounts atomically.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, source domain.Account, dest domain.Account) error {
	modelTransfer := mapping.ToModelTransfer(transfer)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		modelTransfer.TransferID,
		modelTransfer.OwnerUserID,
		modelTransfer.SourceAccountID,
		modelTransfer.DestinationAccountID,
		modelTransfer.Amount,
		modelTransfer.CurrencyCode,
		modelTransfer.Date,
		modelTransfer.Note,
		modelTransfer.Status,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transfer "+modelTransfer.TransferID, err)
	}

	changes := map[string]decimal.Decimal{
		source.AccountID: transfer.Amount.Neg(),
		dest.AccountID:   transfer.Amount,
	}
	if err := r.applyBalanceChanges(ctx, tx, transfer, changes); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReverseTransfer persists the cancellation and restores both balances
// atomically.
func (r *PgxTransferRepository) ReverseTransfer(ctx context.Context, transfer domain.Transfer, source domain.Account, dest domain.Account) error {
	modelTransfer := mapping.ToModelTransfer(transfer)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transfers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transfer_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelTransfer.TransferID,
		modelTransfer.Status,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transfer "+modelTransfer.TransferID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	changes := map[string]decimal.Decimal{
		source.AccountID: transfer.Amount,
		dest.AccountID:   transfer.Amount.Neg(),
	}
	if err := r.applyBalanceChanges(ctx, tx, transfer, changes); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// applyBalanceChanges locks both accounts and shifts their balances. The lock
// helper orders rows by ascending account_id, so two opposite transfers on
// the same pair always lock in the same order.
func (r *PgxTransferRepository) applyBalanceChanges(ctx context.Context, tx pgx.Tx, transfer domain.Transfer, changes map[string]decimal.Decimal) error {
	accountIDs := make([]string, 0, len(changes))
	for id := range changes {
		accountIDs = append(accountIDs, id)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}
	return r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, changes, transfer.LastUpdatedBy, transfer.LastUpdatedAt)
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE transfer_id = $1;`

	modelTransfer, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transfer by ID "+transferID, err)
	}

	domainTransfer := mapping.ToDomainTransfer(modelTransfer)
	return &domainTransfer, nil
}

// ListTransfersByOwner retrieves a page of a user's transfers ordered by date
// descending, using (date, created_at) token-based pagination.
func (r *PgxTransferRepository) ListTransfersByOwner(ctx context.Context, ownerUserID string, limit int, nextToken *string) ([]domain.Transfer, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transferColumns + ` FROM transfers WHERE owner_user_id = $1`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	args := []interface{}{ownerUserID}
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
		return nil, nil, apperrors.NewAppError(500, "failed to query transfer page for user "+ownerUserID, err)
	}
	defer rows.Close()

	transfers, err := collectTransfers(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(transfers) > limit {
		last := transfers[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		transfers = transfers[:limit]
	}
	return transfers, nextTokenVal, nil
}

// ListExecutedTransfersByAccount retrieves every executed transfer touching
// the account as source or destination. Balance verification replays these
// alongside the movement history.
func (r *PgxTransferRepository) ListExecutedTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE (source_account_id = $1 OR destination_account_id = $1) AND status = $2
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, string(domain.TransferExecuted))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query executed transfers for account "+accountID, err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

func collectTransfers(rows pgx.Rows) ([]domain.Transfer, error) {
	transfers := []domain.Transfer{}
	for rows.Next() {
		modelTransfer, err := scanTransfer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transfer row", err)
		}
		transfers = append(transfers, mapping.ToDomainTransfer(modelTransfer))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transfer rows", err)
	}
	return transfers, nil
}
