package services

import (
	"context"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/prsahoo/bank_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the ledger mutation engine: the only writer of account
// balances. Every balance change flows through Deposit/Withdraw, which commit
// the new balance and its journal record as one atomic unit.
type LedgerSvcFacade interface {
	// CreateAccount opens a new account for an existing user. The initial
	// deposit defaults to zero and must not be negative.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// Deposit credits amount to the account and returns the new balance.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw debits amount from the account and returns the new balance.
	// Fails with apperrors.ErrInsufficientFunds when amount exceeds the
	// balance, with no observable side effect.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error)

	// GetAccountByID retrieves an account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListTransactions returns the account's journal ordered by creation.
	ListTransactions(ctx context.Context, accountID string) ([]domain.TransactionRecord, error)
}
