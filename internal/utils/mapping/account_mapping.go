package mapping

import (
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/prsahoo/bank_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		AccountNumber: d.AccountNumber,
		AccountType:   d.AccountType,
		Balance:       d.Balance,
		Status:        models.AccountStatus(d.Status),
		OpenedAt:      d.OpenedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		AccountNumber: m.AccountNumber,
		AccountType:   m.AccountType,
		Balance:       m.Balance,
		Status:        domain.AccountStatus(m.Status),
		OpenedAt:      m.OpenedAt,
	}
}
