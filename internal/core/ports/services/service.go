package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what gets
// handed to the handlers and the sweep worker.
type ServiceContainer struct {
	Auth                 AuthSvcFacade
	User                 UserSvcFacade
	Account              AccountSvcFacade
	Category             CategorySvcFacade
	Transaction          TransactionSvcFacade
	ScheduledTransaction ScheduledTransactionSvcFacade
	Investment           InvestmentSvcFacade
}
