package services

import (
	"time"

	portsrepo "fintracker/internal/core/ports/repositories"
	portssvc "fintracker/internal/core/ports/services"
)

// NewServiceContainer builds all services on top of the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	accountSvc := NewAccountService(repos.AccountRepo, repos.UserRepo)
	categorySvc := NewCategoryService(repos.CategoryRepo)
	transactionSvc := NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, repos.UserRepo)
	scheduledSvc := NewScheduledTransactionService(repos.ScheduledTransactionRepo, repos.AccountRepo, repos.CategoryRepo, repos.UserRepo, transactionSvc)
	investmentSvc := NewInvestmentService(repos.InvestmentRepo, repos.UserRepo)
	authSvc := NewAuthService(userSvc, jwtSecret, jwtExpiry, jwtIssuer)

	return &portssvc.ServiceContainer{
		Auth:                 authSvc,
		User:                 userSvc,
		Account:              accountSvc,
		Category:             categorySvc,
		Transaction:          transactionSvc,
		ScheduledTransaction: scheduledSvc,
		Investment:           investmentSvc,
	}
}
