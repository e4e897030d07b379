package services

import (
	"context"
	"log/slog"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	movementRepo portsrepo.MovementReader
	clock        portssvc.Clock
}

// NewReportingService creates a new reporting service
func NewReportingService(movementRepo portsrepo.MovementReader, clock portssvc.Clock) portssvc.ReportingSvcFacade {
	return &reportingService{movementRepo: movementRepo, clock: clock}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDebtBalance(ctx context.Context, userID string) (*domain.DebtBalance, error) {
	payable, err := s.movementRepo.SumRemainingByVariant(ctx, userID, domain.MovementDebtPayable)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payable debts", slog.String("user_id", userID))
		return nil, err
	}
	receivable, err := s.movementRepo.SumRemainingByVariant(ctx, userID, domain.MovementDebtReceivable)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum receivable debts", slog.String("user_id", userID))
		return nil, err
	}

	return &domain.DebtBalance{
		PayableTotal:    payable,
		ReceivableTotal: receivable,
		Net:             receivable.Sub(payable),
	}, nil
}

func (s *reportingService) ListOverdueDebts(ctx context.Context, userID string) ([]domain.Movement, error) {
	now := s.clock.Now()
	overdue := make([]domain.Movement, 0)

	for _, variant := range []domain.MovementVariant{domain.MovementDebtPayable, domain.MovementDebtReceivable} {
		debts, err := s.movementRepo.ListDebtsByOwner(ctx, userID, variant)
		if err != nil {
			s.LogError(ctx, err, "Failed to list debts", slog.String("user_id", userID), slog.String("variant", string(variant)))
			return nil, err
		}
		for _, m := range debts {
			if m.Debt != nil && m.Debt.IsOverdue(m.Status, now) {
				overdue = append(overdue, m)
			}
		}
	}
	return overdue, nil
}
