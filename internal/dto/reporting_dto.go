package dto

import "github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"

// DebtBalanceResponse defines the aggregated debt position of a user.
type DebtBalanceResponse struct {
	PayableTotal    string `json:"payableTotal"`
	ReceivableTotal string `json:"receivableTotal"`
	Net             string `json:"net"`
}

// ToDebtBalanceResponse converts a domain.DebtBalance to its DTO.
func ToDebtBalanceResponse(b *domain.DebtBalance) DebtBalanceResponse {
	return DebtBalanceResponse{
		PayableTotal:    domain.FormatAmount(b.PayableTotal),
		ReceivableTotal: domain.FormatAmount(b.ReceivableTotal),
		Net:             domain.FormatAmount(b.Net),
	}
}
