package services

import "time"

// Clock abstracts wall-clock access so date defaults and overdue checks are
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// ServiceContainer aggregates every service facade the handler layer needs.
type ServiceContainer struct {
	User      UserSvcFacade
	Auth      AuthSvcFacade
	Currency  CurrencySvcFacade
	Category  CategorySvcFacade
	Account   AccountSvcFacade
	Movement  MovementSvcFacade
	Payment   PaymentSvcFacade
	Transfer  TransferSvcFacade
	Reporting ReportingSvcFacade
}
