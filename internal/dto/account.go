package dto

import (
	"time"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	UserID         string           `json:"userId" binding:"required"`
	AccountType    string           `json:"accountType"`    // Optional, defaults to "Savings"
	InitialDeposit *decimal.Decimal `json:"initialDeposit"` // Optional, defaults to zero; must not be negative
}

// CreateAccountResponse defines the data returned after opening an account.
type CreateAccountResponse struct {
	AccountID     string          `json:"accountId"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for an account lookup.
type AccountResponse struct {
	AccountID     string          `json:"accountId"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	OpenedAt      time.Time       `json:"openedAt"`
}

// AmountRequest carries the amount for a deposit or withdrawal.
// positivedecimal is a custom binding rule registered by the handlers package.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
}

// BalanceResponse is returned after a successful deposit or withdrawal.
type BalanceResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToCreateAccountResponse converts a freshly created domain.Account.
func ToCreateAccountResponse(acc *domain.Account) CreateAccountResponse {
	return CreateAccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		Balance:       acc.Balance,
	}
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		Status:        string(acc.Status),
		OpenedAt:      acc.OpenedAt,
	}
}
