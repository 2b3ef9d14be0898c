package mapping

import (
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/prsahoo/bank_ledger_app/internal/models"
)

// ToModelTransaction converts a domain TransactionRecord to a model Transaction
func ToModelTransaction(d domain.TransactionRecord) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		Amount:        d.Amount,
		TxnType:       models.TxnType(d.TxnType),
		Description:   d.Description,
		PostBalance:   d.PostBalance,
		Status:        models.TxnStatus(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain TransactionRecord
func ToDomainTransaction(m models.Transaction) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID: m.TransactionID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Amount:        m.Amount,
		TxnType:       domain.TxnType(m.TxnType),
		Description:   m.Description,
		PostBalance:   m.PostBalance,
		Status:        domain.TxnStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain records
func ToDomainTransactionSlice(ms []models.Transaction) []domain.TransactionRecord {
	ds := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
