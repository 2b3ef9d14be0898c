package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prsahoo/bank_ledger_app/internal/apperrors"
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/prsahoo/bank_ledger_app/internal/core/ports/repositories"
	"github.com/prsahoo/bank_ledger_app/internal/models"
	"github.com/prsahoo/bank_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// pgUniqueViolation is the Postgres SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, account_number, account_type, balance, status, opened_at`

// SaveAccount inserts a new account. A unique violation on the account number
// (or id) surfaces as apperrors.ErrDuplicate so the engine can regenerate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, user_id, account_number, account_type, balance, status, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.UserID,
		modelAcc.AccountNumber,
		modelAcc.AccountType,
		modelAcc.Balance,
		modelAcc.Status,
		modelAcc.OpenedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, modelAcc.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return r.scanAccount(r.Pool.QueryRow(ctx, query, accountID), accountID)
}

// FindAccountByNumber retrieves an account by its customer-facing number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	return r.scanAccount(r.Pool.QueryRow(ctx, query, accountNumber), accountNumber)
}

// FindAccountByIDForUpdate selects the account row and locks it for the
// duration of tx. All concurrent deposit/withdraw units on the same account
// queue behind this lock; rows of other accounts are untouched.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	return r.scanAccount(tx.QueryRow(ctx, query, accountID), accountID)
}

// UpdateBalanceInTx sets the account balance within the caller's transaction.
// It must affect exactly one row.
func (r *PgxAccountRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, now time.Time) error {
	query := `UPDATE accounts SET balance = $2, updated_at = $3 WHERE account_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, accountID, newBalance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() != 1 {
		return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountID)
	}
	return nil
}

func (r *PgxAccountRepository) scanAccount(row pgx.Row, key string) (*domain.Account, error) {
	var modelAcc models.Account
	err := row.Scan(
		&modelAcc.AccountID,
		&modelAcc.UserID,
		&modelAcc.AccountNumber,
		&modelAcc.AccountType,
		&modelAcc.Balance,
		&modelAcc.Status,
		&modelAcc.OpenedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", key, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}
