package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against a shared
// connection pool. Movement, payment and transfer repositories receive the
// account repository so they can lock and adjust balances inside their own
// transactions.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)

	return portsrepo.RepositoryProvider{
		User:     newPgxUserRepository(pool),
		Currency: newPgxCurrencyRepository(pool),
		Category: newPgxCategoryRepository(pool),
		Account:  accountRepo,
		Movement: newPgxMovementRepository(pool, accountRepo),
		Payment:  newPgxPaymentRepository(pool, accountRepo),
		Transfer: newPgxTransferRepository(pool, accountRepo),
	}
}
