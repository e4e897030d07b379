package services

import (
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	clock := NewRealClock()

	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.User)
	container.Auth = NewAuthService(repos.User, cfg, clock)
	container.Currency = NewCurrencyService(repos.Currency)
	container.Category = NewCategoryService(repos.Category, repos.Movement, clock)
	container.Account = NewAccountService(repos.Account, repos.Currency, repos.Movement, repos.Transfer, clock)
	container.Movement = NewMovementService(repos.Movement, repos.Payment, container.Account, container.Category, clock)
	container.Payment = NewPaymentService(repos.Payment, repos.Movement, clock)
	container.Transfer = NewTransferService(repos.Transfer, repos.Account, clock)
	container.Reporting = NewReportingService(repos.Movement, clock)

	return container
}
