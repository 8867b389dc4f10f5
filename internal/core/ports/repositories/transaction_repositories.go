package repositories

import (
	"context"
	"time"

	"fintracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence operations for transactions.
//
// The three mutating operations each take the balance deltas computed by the
// service layer and must apply them to the affected accounts atomically with
// the row change: a failure partway leaves neither the transaction row nor any
// balance modified.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error
	// SaveTransactionFromSchedule inserts a transaction booked from a scheduled
	// transaction and writes back the template row (carrying its advanced due
	// date) in the same database transaction as the insert and the balance
	// deltas. The booking and the due-date advance commit together or not at
	// all.
	SaveTransactionFromSchedule(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal, st domain.ScheduledTransaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error
	DeleteTransaction(ctx context.Context, transactionID string, deltas map[string]decimal.Decimal) error

	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	// FindTransactionsByAccountID returns a page of transactions for the
	// account ordered by transaction date descending, plus a token for the
	// next page when one exists.
	FindTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
	FindTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error)
	FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	FindTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
	FindTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error)
}
