package domain_test

import (
	"testing"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestTransactionRecord_SignedAmount(t *testing.T) {
	accountID := "acc-1"
	tests := []struct {
		name   string
		record domain.TransactionRecord
		want   decimal.Decimal
	}{
		{
			name: "deposit is positive",
			record: domain.TransactionRecord{
				ToAccountID: stringPtr(accountID),
				Amount:      decimal.NewFromFloat(50.00),
				TxnType:     domain.Deposit,
			},
			want: decimal.NewFromFloat(50.00),
		},
		{
			name: "withdrawal is negative",
			record: domain.TransactionRecord{
				FromAccountID: stringPtr(accountID),
				Amount:        decimal.NewFromFloat(20.00),
				TxnType:       domain.Withdrawal,
			},
			want: decimal.NewFromFloat(-20.00),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.record.SignedAmount()), "expected %s got %s", tt.want, tt.record.SignedAmount())
		})
	}
}

func TestTransactionRecord_LedgerAccountID(t *testing.T) {
	assert.Equal(t, "a1", domain.TransactionRecord{ToAccountID: stringPtr("a1"), TxnType: domain.Deposit}.LedgerAccountID())
	assert.Equal(t, "a2", domain.TransactionRecord{FromAccountID: stringPtr("a2"), TxnType: domain.Withdrawal}.LedgerAccountID())
	assert.Empty(t, domain.TransactionRecord{}.LedgerAccountID())
}

// Replaying an ordered journal from the opening balance must reproduce the
// stored balance, and each intermediate value must equal the record's
// PostBalance.
func TestReplayBalance_ReproducesStoredBalance(t *testing.T) {
	accountID := "acc-replay"
	opening := decimal.NewFromFloat(100.00)

	records := []domain.TransactionRecord{
		{ToAccountID: stringPtr(accountID), Amount: decimal.NewFromFloat(50.00), TxnType: domain.Deposit, PostBalance: decimal.NewFromFloat(150.00)},
		{FromAccountID: stringPtr(accountID), Amount: decimal.NewFromFloat(30.00), TxnType: domain.Withdrawal, PostBalance: decimal.NewFromFloat(120.00)},
		{ToAccountID: stringPtr(accountID), Amount: decimal.NewFromFloat(5.50), TxnType: domain.Deposit, PostBalance: decimal.NewFromFloat(125.50)},
		{FromAccountID: stringPtr(accountID), Amount: decimal.NewFromFloat(125.50), TxnType: domain.Withdrawal, PostBalance: decimal.Zero},
	}

	running := opening
	for i, rec := range records {
		running = running.Add(rec.SignedAmount())
		assert.True(t, rec.PostBalance.Equal(running), "record %d post balance mismatch: %s vs %s", i, rec.PostBalance, running)
	}

	final := domain.ReplayBalance(opening, records)
	assert.True(t, final.Equal(decimal.Zero), "expected zero final balance, got %s", final)
}

func TestReplayBalance_EmptyJournal(t *testing.T) {
	opening := decimal.NewFromFloat(42.42)
	assert.True(t, opening.Equal(domain.ReplayBalance(opening, nil)))
}
