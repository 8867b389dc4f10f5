package services

import (
	"context"
	"time"

	"fintracker/internal/core/domain"
	"fintracker/internal/dto"
)

// TransactionSvcFacade is the transaction service surface consumed by handlers
// and by the scheduler engine.
type TransactionSvcFacade interface {
	// CreateTransaction books a transaction against an account. On success the
	// transaction is persisted and the account balance reflects it exactly once.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	// CreateFromSchedule books a transaction materialised from a scheduled
	// transaction, carrying the back-reference to its template. The template
	// passed in, already carrying its advanced due date, is written back in
	// the same unit of work as the booking: both persist or neither does.
	CreateFromSchedule(ctx context.Context, st domain.ScheduledTransaction, now time.Time) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransactionsByAccountID(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	GetTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
	GetTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
