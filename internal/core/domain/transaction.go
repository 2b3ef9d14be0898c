package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a journal entry. TRANSFER is reserved and never produced
// by current flows.
type TxnType string

const (
	Deposit    TxnType = "DEPOSIT"
	Withdrawal TxnType = "WITHDRAWAL"
	Transfer   TxnType = "TRANSFER"
)

// TxnStatus is the outcome recorded on a journal entry. Failed operations
// currently produce no entry at all, so only SUCCESS is ever written; FAILED
// is reserved.
type TxnStatus string

const (
	TxnSuccess TxnStatus = "SUCCESS"
	TxnFailed  TxnStatus = "FAILED"
)

// TransactionRecord is one immutable entry in an account's append-only
// journal. Exactly one of FromAccountID/ToAccountID is set: deposits set
// ToAccountID, withdrawals set FromAccountID.
type TransactionRecord struct {
	TransactionID string          `json:"transactionID"`
	FromAccountID *string         `json:"fromAccountID,omitempty"`
	ToAccountID   *string         `json:"toAccountID,omitempty"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	TxnType       TxnType         `json:"txnType"`
	Description   string          `json:"description"`
	PostBalance   decimal.Decimal `json:"postBalance"` // Account balance immediately after this entry
	Status        TxnStatus       `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// LedgerAccountID returns the ID of the account whose balance this record
// reflects via PostBalance.
func (t TransactionRecord) LedgerAccountID() string {
	if t.ToAccountID != nil {
		return *t.ToAccountID
	}
	if t.FromAccountID != nil {
		return *t.FromAccountID
	}
	return ""
}

// SignedAmount is the delta this record applies to the affected account's
// balance: positive for deposits, negative for withdrawals.
func (t TransactionRecord) SignedAmount() decimal.Decimal {
	if t.TxnType == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ReplayBalance applies an ordered journal to an opening balance. For a
// consistent ledger the result equals the account's stored balance, and every
// intermediate value equals the corresponding record's PostBalance.
func ReplayBalance(opening decimal.Decimal, records []TransactionRecord) decimal.Decimal {
	balance := opening
	for _, rec := range records {
		balance = balance.Add(rec.SignedAmount())
	}
	return balance
}
