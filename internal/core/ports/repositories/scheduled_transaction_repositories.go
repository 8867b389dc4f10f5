package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"fintracker/internal/core/domain"
)

// ScheduledTransactionRepository defines persistence operations for scheduled
// transactions.
type ScheduledTransactionRepository interface {
	SaveScheduledTransaction(ctx context.Context, st domain.ScheduledTransaction) error
	FindScheduledTransactionByID(ctx context.Context, id string) (*domain.ScheduledTransaction, error)
	FindAllScheduledTransactions(ctx context.Context) ([]domain.ScheduledTransaction, error)
	FindScheduledTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransaction, error)
	FindScheduledTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.ScheduledTransaction, error)
	FindScheduledTransactionsByUserID(ctx context.Context, userID string) ([]domain.ScheduledTransaction, error)
	// FindDueBefore returns active scheduled transactions whose next due date
	// is strictly before the given time, in the store's natural order.
	FindDueBefore(ctx context.Context, now time.Time) ([]domain.ScheduledTransaction, error)
	// FindUpcomingBefore returns scheduled transactions due before the given
	// time regardless of the active flag.
	FindUpcomingBefore(ctx context.Context, date time.Time) ([]domain.ScheduledTransaction, error)
	UpdateScheduledTransaction(ctx context.Context, st domain.ScheduledTransaction) error
	// UpdateScheduledTransactionInTx performs the same update inside an open
	// database transaction, so the caller can commit it together with other
	// row changes.
	UpdateScheduledTransactionInTx(ctx context.Context, tx pgx.Tx, st domain.ScheduledTransaction) error
	DeleteScheduledTransaction(ctx context.Context, id string) error
}
