package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prsahoo/bank_ledger_app/internal/apperrors"
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/prsahoo/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/prsahoo/bank_ledger_app/internal/core/ports/services"
	"github.com/prsahoo/bank_ledger_app/internal/dto"
	"github.com/prsahoo/bank_ledger_app/internal/middleware"
	"github.com/prsahoo/bank_ledger_app/internal/utils"
)

// maxAccountNumberAttempts bounds regeneration when a freshly generated
// account number collides with an existing one.
const maxAccountNumberAttempts = 5

const (
	depositDescription    = "Deposit via web"
	withdrawalDescription = "Withdrawal via web"
)

// ledgerService is the ledger mutation engine. It owns all validation and
// orchestrates the atomic unit (balance update + journal append) exposed by
// the transaction repository. No other component writes account balances.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		userRepo:    userRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateAccount opens a new account for an existing user. The opening balance
// is implicit: no journal entry is written for the initial deposit, so an
// account's journal replays from its opening balance rather than from zero.
func (s *ledgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	initialDeposit := decimal.Zero
	if req.InitialDeposit != nil {
		if req.InitialDeposit.IsNegative() {
			return nil, fmt.Errorf("%w: initial deposit must not be negative", apperrors.ErrValidation)
		}
		initialDeposit = *req.InitialDeposit
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = domain.DefaultAccountType
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve owning user for account creation", slog.String("user_id", req.UserID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to resolve owning user: %w", err)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      req.UserID,
		AccountType: accountType,
		Balance:     initialDeposit,
		Status:      domain.StatusActive,
		OpenedAt:    time.Now().UTC(),
	}

	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		number, err := utils.GenerateAccountNumber()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
		}
		account.AccountNumber = number

		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			logger.Info("Account created",
				slog.String("account_id", account.AccountID),
				slog.String("account_number", account.AccountNumber),
				slog.String("user_id", account.UserID))
			return &account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
			return nil, err
		}
		logger.Warn("Account number collision, regenerating",
			slog.String("account_number", number),
			slog.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("%w: could not allocate a unique account number after %d attempts", apperrors.ErrConflict, maxAccountNumberAttempts)
}

// Deposit credits amount to the account.
func (s *ledgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	record := domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		ToAccountID:   &accountID,
		Amount:        amount,
		TxnType:       domain.Deposit,
		Description:   depositDescription,
		Status:        domain.TxnSuccess,
		CreatedAt:     time.Now().UTC(),
	}

	return s.post(ctx, record)
}

// Withdraw debits amount from the account. The balance check happens on the
// locked row inside the atomic unit, so a rejected withdrawal leaves no trace.
func (s *ledgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	record := domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		FromAccountID: &accountID,
		Amount:        amount,
		TxnType:       domain.Withdrawal,
		Description:   withdrawalDescription,
		Status:        domain.TxnSuccess,
		CreatedAt:     time.Now().UTC(),
	}

	return s.post(ctx, record)
}

func (s *ledgerService) post(ctx context.Context, record domain.TransactionRecord) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accountID := record.LedgerAccountID()

	newBalance, err := s.txnRepo.PostTransaction(ctx, record)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Error("Failed to post transaction",
				slog.String("account_id", accountID),
				slog.String("txn_type", string(record.TxnType)),
				slog.String("error", err.Error()))
		}
		return decimal.Zero, err
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", record.TransactionID),
		slog.String("account_id", accountID),
		slog.String("txn_type", string(record.TxnType)),
		slog.String("amount", record.Amount.String()),
		slog.String("post_balance", newBalance.String()))
	return newBalance, nil
}

// GetAccountByID retrieves an account.
func (s *ledgerService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListTransactions returns the account's journal ordered by creation time.
// The account must exist even when its journal is empty.
func (s *ledgerService) ListTransactions(ctx context.Context, accountID string) ([]domain.TransactionRecord, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionsByAccountID(ctx, accountID)
}
