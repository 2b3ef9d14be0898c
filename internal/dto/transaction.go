package dto

import (
	"time"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for one journal entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionId"`
	FromAccountID *string         `json:"fromAccountId,omitempty"`
	ToAccountID   *string         `json:"toAccountId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	TxnType       string          `json:"txnType"`
	Description   string          `json:"description"`
	PostBalance   decimal.Decimal `json:"postBalance"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps an account's ordered journal.
type ListTransactionsResponse struct {
	AccountID    string                `json:"accountId"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.TransactionRecord.
func ToTransactionResponse(rec domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		TransactionID: rec.TransactionID,
		FromAccountID: rec.FromAccountID,
		ToAccountID:   rec.ToAccountID,
		Amount:        rec.Amount,
		TxnType:       string(rec.TxnType),
		Description:   rec.Description,
		PostBalance:   rec.PostBalance,
		Status:        string(rec.Status),
		CreatedAt:     rec.CreatedAt,
	}
}

// ToListTransactionsResponse converts an account's journal.
func ToListTransactionsResponse(accountID string, recs []domain.TransactionRecord) ListTransactionsResponse {
	out := make([]TransactionResponse, len(recs))
	for i, rec := range recs {
		out[i] = ToTransactionResponse(rec)
	}
	return ListTransactionsResponse{AccountID: accountID, Transactions: out}
}
