package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a row in the transactions table.
type TxnType string

const (
	Deposit    TxnType = "DEPOSIT"
	Withdrawal TxnType = "WITHDRAWAL"
	Transfer   TxnType = "TRANSFER"
)

// TxnStatus is the persisted outcome on a transaction row.
type TxnStatus string

const (
	TxnSuccess TxnStatus = "SUCCESS"
	TxnFailed  TxnStatus = "FAILED"
)

// Transaction represents a row in the append-only transactions table.
// FromAccountID/ToAccountID use pointers for nullable foreign keys.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	FromAccountID *string         `db:"from_account_id"`
	ToAccountID   *string         `db:"to_account_id"`
	Amount        decimal.Decimal `db:"amount"`
	TxnType       TxnType         `db:"txn_type"`
	Description   string          `db:"description"`
	PostBalance   decimal.Decimal `db:"post_balance"`
	Status        TxnStatus       `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}
