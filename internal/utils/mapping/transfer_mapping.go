package mapping

import (
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/models"
)

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:           d.TransferID,
		OwnerUserID:          d.OwnerUserID,
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		Amount:               d.Amount,
		CurrencyCode:         d.CurrencyCode,
		Date:                 d.Date,
		Note:                 d.Note,
		Status:               string(d.Status),
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:           m.TransferID,
		OwnerUserID:          m.OwnerUserID,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		Amount:               m.Amount,
		CurrencyCode:         m.CurrencyCode,
		Date:                 m.Date,
		Note:                 m.Note,
		Status:               domain.TransferStatus(m.Status),
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
