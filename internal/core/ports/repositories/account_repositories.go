package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its customer-facing account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A uniqueness violation on the
	// account number surfaces as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations invoked only inside the
// journal's atomic unit of work.
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects the account row and locks it for the
	// duration of tx, serializing concurrent operations on the same account.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateBalanceInTx sets the account balance within tx. It must affect
	// exactly one row, else apperrors.ErrNotFound.
	UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
