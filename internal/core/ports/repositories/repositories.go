package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service wiring cleaner.
type RepositoryProvider struct {
	UserRepo                 UserRepository
	AccountRepo              AccountRepository
	CategoryRepo             CategoryRepository
	TransactionRepo          TransactionRepository
	ScheduledTransactionRepo ScheduledTransactionRepository
	InvestmentRepo           InvestmentRepository
}
