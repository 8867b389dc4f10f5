package pgsql

import (
	portsrepo "fintracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	scheduledTransactionRepo := newPgxScheduledTransactionRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo, scheduledTransactionRepo)
	investmentRepo := newPgxInvestmentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:                 userRepo,
		AccountRepo:              accountRepo,
		CategoryRepo:             categoryRepo,
		TransactionRepo:          transactionRepo,
		ScheduledTransactionRepo: scheduledTransactionRepo,
		InvestmentRepo:           investmentRepo,
	}
}
