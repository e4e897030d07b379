package repositories

// RepositoryProvider aggregates every repository facade the service layer
// needs. The pgsql package returns one fully wired instance.
type RepositoryProvider struct {
	User     UserRepositoryFacade
	Currency CurrencyRepositoryFacade
	Category CategoryRepositoryFacade
	Account  AccountRepositoryFacade
	Movement MovementRepositoryFacade
	Payment  PaymentRepositoryFacade
	Transfer TransferRepositoryFacade
}
