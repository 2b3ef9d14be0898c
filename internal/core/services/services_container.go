package services

import (
	portsrepo "github.com/prsahoo/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/prsahoo/bank_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos.AccountRepo, repos.TransactionRepo, repos.UserRepo),
		User:   NewUserService(repos.UserRepo),
	}
}

// Compile-time interface checks
var (
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ portssvc.UserSvcFacade   = (*userService)(nil)
)
