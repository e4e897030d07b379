package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// ReportingSvcFacade exposes read-only aggregations over the ledger.
type ReportingSvcFacade interface {
	// GetDebtBalance totals the user's remaining payable and receivable debts.
	GetDebtBalance(ctx context.Context, userID string) (*domain.DebtBalance, error)

	// ListOverdueDebts retrieves the user's unpaid debts past their due date.
	ListOverdueDebts(ctx context.Context, userID string) ([]domain.Movement, error)
}
