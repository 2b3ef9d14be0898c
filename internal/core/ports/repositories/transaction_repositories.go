package repositories

import (
	"context"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryFacade is the append-only journal. There is no update
// or delete operation: a posted record is immutable forever after.
type TransactionRepositoryFacade interface {
	// PostTransaction applies the record to its account as one atomic unit:
	// the balance update and the journal insert commit together or not at
	// all. The account row is locked for the unit's duration, so concurrent
	// operations on the same account serialize while operations on distinct
	// accounts proceed independently. Returns the account balance after the
	// record is applied.
	//
	// Failure kinds: apperrors.ErrNotFound when the account does not exist,
	// apperrors.ErrInsufficientFunds when the record would drive the balance
	// negative. Either way nothing is persisted.
	PostTransaction(ctx context.Context, record domain.TransactionRecord) (decimal.Decimal, error)

	// FindTransactionsByAccountID returns the account's journal ordered by
	// creation time.
	FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.TransactionRecord, error)
}
