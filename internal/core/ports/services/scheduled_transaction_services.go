package services

import (
	"context"
	"time"

	"fintracker/internal/core/domain"
	"fintracker/internal/dto"
)

// ScheduledTransactionSvcFacade is the scheduler engine surface consumed by
// handlers and by the periodic sweep trigger.
type ScheduledTransactionSvcFacade interface {
	CreateScheduledTransaction(ctx context.Context, req dto.CreateScheduledTransactionRequest, creatorUserID string) (*domain.ScheduledTransaction, error)
	GetScheduledTransactionByID(ctx context.Context, id string) (*domain.ScheduledTransaction, error)
	ListScheduledTransactions(ctx context.Context) ([]domain.ScheduledTransaction, error)
	GetScheduledTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransaction, error)
	GetScheduledTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.ScheduledTransaction, error)
	GetScheduledTransactionsByUserID(ctx context.Context, userID string) ([]domain.ScheduledTransaction, error)
	GetUpcomingScheduledTransactions(ctx context.Context, date time.Time) ([]domain.ScheduledTransaction, error)
	UpdateScheduledTransaction(ctx context.Context, id string, req dto.UpdateScheduledTransactionRequest) (*domain.ScheduledTransaction, error)
	DeleteScheduledTransaction(ctx context.Context, id string) error
	// Execute materialises one transaction from the template and advances its
	// next due date by one frequency unit.
	Execute(ctx context.Context, id string) (*domain.Transaction, error)
	// ProcessDue executes every active template due before now, sequentially,
	// and returns the number executed. The sweep aborts on the first failure.
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}
