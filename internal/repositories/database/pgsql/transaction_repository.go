package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prsahoo/bank_ledger_app/internal/apperrors"
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/prsahoo/bank_ledger_app/internal/core/ports/repositories"
	"github.com/prsahoo/bank_ledger_app/internal/models"
	"github.com/prsahoo/bank_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository is the append-only journal. It owns the atomic
// unit of work: balance update and journal insert commit together or not at
// all. There is no update or delete statement in this file.
type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for journal data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// PostTransaction applies record to its account as one atomic unit:
//
//	begin -> lock account row -> compute post balance -> update balance
//	-> insert journal row -> commit
//
// The FOR UPDATE lock serializes concurrent units on the same account, so
// the balance read here can never be stale at commit time. Any failure
// before commit rolls the whole unit back via the deferred Rollback.
func (r *PgxTransactionRepository) PostTransaction(ctx context.Context, record domain.TransactionRecord) (decimal.Decimal, error) {
	accountID := record.LedgerAccountID()
	if accountID == "" {
		return decimal.Zero, fmt.Errorf("%w: transaction record references no account", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx) // No-op once committed.

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	postBalance := account.Balance.Add(record.SignedAmount())
	if postBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, account.Balance, record.Amount)
	}

	if err := r.accountRepo.UpdateBalanceInTx(ctx, tx, accountID, postBalance, record.CreatedAt); err != nil {
		return decimal.Zero, err
	}

	record.PostBalance = postBalance
	modelTxn := mapping.ToModelTransaction(record)

	query := `
		INSERT INTO transactions (transaction_id, from_account_id, to_account_id, amount, txn_type, description, post_balance, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.FromAccountID,
		modelTxn.ToAccountID,
		modelTxn.Amount,
		modelTxn.TxnType,
		modelTxn.Description,
		modelTxn.PostBalance,
		modelTxn.Status,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return postBalance, nil
}

// FindTransactionsByAccountID returns the account's journal ordered by
// creation time, oldest first.
func (r *PgxTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.TransactionRecord, error) {
	query := `
		SELECT transaction_id, from_account_id, to_account_id, amount, txn_type, description, post_balance, status, created_at
		FROM transactions
		WHERE from_account_id = $1 OR to_account_id = $1
		ORDER BY created_at, transaction_id;
	`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	records := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.FromAccountID,
			&m.ToAccountID,
			&m.Amount,
			&m.TxnType,
			&m.Description,
			&m.PostBalance,
			&m.Status,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %s: %w", accountID, err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %s: %w", accountID, err)
	}

	return mapping.ToDomainTransactionSlice(records), nil
}
