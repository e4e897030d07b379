package dto

import (
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CreateTransferRequest defines the data needed to execute a transfer between
// two of the user's accounts. The currency is taken from the source account.
type CreateTransferRequest struct {
	SourceAccountID      string     `json:"sourceAccountID" binding:"required"`
	DestinationAccountID string     `json:"destinationAccountID" binding:"required"`
	Amount               string     `json:"amount" binding:"required,amount"`
	Date                 *time.Time `json:"date"`
	Note                 string     `json:"note" binding:"max=255"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID           string                `json:"transferID"`
	SourceAccountID      string                `json:"sourceAccountID"`
	DestinationAccountID string                `json:"destinationAccountID"`
	Amount               string                `json:"amount"`
	CurrencyCode         string                `json:"currencyCode"`
	Status               domain.TransferStatus `json:"status"`
	Date                 time.Time             `json:"date"`
	Note                 string                `json:"note,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	LastUpdatedAt        time.Time             `json:"lastUpdatedAt"`
}

// ToTransferResponse converts a domain.Transfer to a TransferResponse DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:           t.TransferID,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		Amount:               domain.FormatAmount(t.Amount),
		CurrencyCode:         t.CurrencyCode,
		Status:               t.Status,
		Date:                 t.Date,
		Note:                 t.Note,
		CreatedAt:            t.CreatedAt,
		LastUpdatedAt:        t.LastUpdatedAt,
	}
}

// ToListTransferResponse converts a slice of transfers to DTOs.
func ToListTransferResponse(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}

// ListTransfersParams defines pagination parameters for transfer listing.
type ListTransfersParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListTransfersResponse wraps a page of transfers with the continuation token.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken string             `json:"nextToken,omitempty"`
}
