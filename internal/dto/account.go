package dto

import (
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// Amounts travel as fixed-point decimal strings; the "amount" validator
// rejects anything beyond two fractional digits.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Kind           string `json:"kind" binding:"required,oneof=CASH BANK MOBILE_MONEY SAVINGS OTHER"`
	CurrencyCode   string `json:"currencyCode" binding:"required"`
	Description    string `json:"description"`
	Number         string `json:"number"`
	Institution    string `json:"institution"`
	OpeningBalance string `json:"openingBalance" binding:"omitempty,amount"` // defaults to 0
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Balances are deliberately absent: only ledger operations may move them.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
	Number      *string `json:"number"`
	Institution *string `json:"institution"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Kind           domain.AccountKind `json:"kind"`
	CurrencyCode   string             `json:"currencyCode"`
	Description    string             `json:"description,omitempty"`
	Number         string             `json:"number,omitempty"`
	Institution    string             `json:"institution,omitempty"`
	OpeningBalance string             `json:"openingBalance"`
	CurrentBalance string             `json:"currentBalance"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		Kind:           a.Kind,
		CurrencyCode:   a.CurrencyCode,
		Description:    a.Description,
		Number:         a.Number,
		Institution:    a.Institution,
		OpeningBalance: domain.FormatAmount(a.OpeningBalance),
		CurrentBalance: domain.FormatAmount(a.CurrentBalance),
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		LastUpdatedAt:  a.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToAccountResponse(&a)
	}
	return res
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID    string `json:"accountID"`
	Balance      string `json:"balance"`
	CurrencyCode string `json:"currencyCode"`
	Verified     bool   `json:"verified"` // true when returned by the verification endpoint
}
