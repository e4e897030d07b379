package dto

import (
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CreateMovementRequest defines the data needed to create a new movement.
// Variant is restricted to the non-debt kinds; debts go through CreateDebtRequest
// so the debt payload is always present where it belongs.
type CreateMovementRequest struct {
	Variant     string    `json:"variant" binding:"required,oneof=INCOME EXPENSE GIFT"`
	TotalAmount string    `json:"totalAmount" binding:"required,amount"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" binding:"max=255"`
	CategoryID  string    `json:"categoryID" binding:"required"`
	AccountID   string    `json:"accountID" binding:"required"`
	ProjectID   string    `json:"projectID"`
	ContactID   string    `json:"contactID"`
}

// CreateDebtRequest defines the data needed to create a debt movement.
// The principal starts equal to the total amount.
type CreateDebtRequest struct {
	Direction    string     `json:"direction" binding:"required,oneof=DEBT_PAYABLE DEBT_RECEIVABLE"`
	TotalAmount  string     `json:"totalAmount" binding:"required,amount"`
	Date         time.Time  `json:"date" binding:"required"`
	Description  string     `json:"description" binding:"max=255"`
	CategoryID   string     `json:"categoryID" binding:"required"`
	AccountID    string     `json:"accountID" binding:"required"`
	ContactID    string     `json:"contactID"`
	DueDate      *time.Time `json:"dueDate"`
	InterestRate string     `json:"interestRate" binding:"omitempty,amount"` // percent, defaults to 0
}

// UpdateMovementRequest defines the mutable movement fields. Amount changes
// re-derive the status but never rewrite recorded payments.
type UpdateMovementRequest struct {
	TotalAmount *string    `json:"totalAmount" binding:"omitempty,amount"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
	CategoryID  *string    `json:"categoryID"`
	DueDate     *time.Time `json:"dueDate"`
}

// DebtDetailsResponse carries the debt payload of a debt movement.
type DebtDetailsResponse struct {
	DueDate            *time.Time `json:"dueDate,omitempty"`
	InterestRate       string     `json:"interestRate"`
	PrincipalRemaining string     `json:"principalRemaining"`
	AccruedInterest    string     `json:"accruedInterest"`
	LastPaymentDate    *time.Time `json:"lastPaymentDate,omitempty"`
	Overdue            bool       `json:"overdue"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID      string                 `json:"movementID"`
	Variant         domain.MovementVariant `json:"variant"`
	TotalAmount     string                 `json:"totalAmount"`
	EffectiveAmount string                 `json:"effectiveAmount"`
	RemainingAmount string                 `json:"remainingAmount"`
	Status          domain.MovementStatus  `json:"status"`
	Date            time.Time              `json:"date"`
	Description     string                 `json:"description,omitempty"`
	CategoryID      string                 `json:"categoryID"`
	AccountID       string                 `json:"accountID"`
	ProjectID       string                 `json:"projectID,omitempty"`
	ContactID       string                 `json:"contactID,omitempty"`
	Debt            *DebtDetailsResponse   `json:"debt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ToMovementResponse converts a domain.Movement to a MovementResponse DTO.
// Overdue is evaluated against the supplied time so callers control the clock.
func ToMovementResponse(m *domain.Movement, now time.Time) MovementResponse {
	res := MovementResponse{
		MovementID:      m.MovementID,
		Variant:         m.Variant,
		TotalAmount:     domain.FormatAmount(m.TotalAmount),
		EffectiveAmount: domain.FormatAmount(m.EffectiveAmount),
		RemainingAmount: domain.FormatAmount(m.RemainingAmount()),
		Status:          m.Status,
		Date:            m.Date,
		Description:     m.Description,
		CategoryID:      m.CategoryID,
		AccountID:       m.AccountID,
		ProjectID:       m.ProjectID,
		ContactID:       m.ContactID,
		CreatedAt:       m.CreatedAt,
		LastUpdatedAt:   m.LastUpdatedAt,
	}
	if m.Debt != nil {
		res.Debt = &DebtDetailsResponse{
			DueDate:            m.Debt.DueDate,
			InterestRate:       m.Debt.InterestRate.StringFixed(2),
			PrincipalRemaining: domain.FormatAmount(m.Debt.PrincipalRemaining),
			AccruedInterest:    domain.FormatAmount(m.Debt.ComputeInterest()),
			LastPaymentDate:    m.Debt.LastPaymentDate,
			Overdue:            m.Debt.IsOverdue(m.Status, now),
		}
	}
	return res
}

// ToListMovementResponse converts a slice of movements to DTOs.
func ToListMovementResponse(movements []domain.Movement, now time.Time) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i := range movements {
		res[i] = ToMovementResponse(&movements[i], now)
	}
	return res
}

// ListMovementsParams defines pagination parameters for movement listing.
type ListMovementsParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListMovementsResponse wraps a page of movements with the continuation token.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken string             `json:"nextToken,omitempty"`
}
