package dto

import (
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// RecordPaymentRequest defines the data needed to record a payment against a
// movement. Type defaults to MIXED when omitted; Date defaults to the service
// clock's today.
type RecordPaymentRequest struct {
	Amount    string     `json:"amount" binding:"required,amount"`
	Type      string     `json:"type" binding:"omitempty,oneof=PRINCIPAL INTEREST MIXED"`
	Date      *time.Time `json:"date"`
	Comment   string     `json:"comment" binding:"max=255"`
	Reference string     `json:"reference" binding:"max=100"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID        string               `json:"paymentID"`
	MovementID       string               `json:"movementID"`
	Amount           string               `json:"amount"`
	PrincipalPortion string               `json:"principalPortion"`
	InterestPortion  string               `json:"interestPortion"`
	Type             domain.PaymentType   `json:"type"`
	Status           domain.PaymentStatus `json:"status"`
	Date             time.Time            `json:"date"`
	Comment          string               `json:"comment,omitempty"`
	Reference        string               `json:"reference,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		MovementID:       p.MovementID,
		Amount:           domain.FormatAmount(p.Amount),
		PrincipalPortion: domain.FormatAmount(p.PrincipalPortion),
		InterestPortion:  domain.FormatAmount(p.InterestPortion),
		Type:             p.Type,
		Status:           p.Status,
		Date:             p.Date,
		Comment:          p.Comment,
		Reference:        p.Reference,
		CreatedAt:        p.CreatedAt,
	}
}

// ToListPaymentResponse converts a slice of payments to DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
