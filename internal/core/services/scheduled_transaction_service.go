package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
)

// scheduledTransactionService maintains recurring transaction templates and
// materialises real transactions from them when they fall due.
type scheduledTransactionService struct {
	schedRepo    portsrepo.ScheduledTransactionRepository
	accountRepo  portsrepo.AccountRepository
	categoryRepo portsrepo.CategoryRepository
	userRepo     portsrepo.UserRepository
	txnSvc       portssvc.TransactionSvcFacade
}

// NewScheduledTransactionService creates a new scheduled transaction service.
func NewScheduledTransactionService(
	schedRepo portsrepo.ScheduledTransactionRepository,
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CategoryRepository,
	userRepo portsrepo.UserRepository,
	txnSvc portssvc.TransactionSvcFacade,
) portssvc.ScheduledTransactionSvcFacade {
	return &scheduledTransactionService{
		schedRepo:    schedRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		txnSvc:       txnSvc,
	}
}

var _ portssvc.ScheduledTransactionSvcFacade = (*scheduledTransactionService)(nil)

// advanceDueDate moves a due date forward by one frequency unit. Monthly and
// yearly advancement is calendar-aware and clamps to the last day of a shorter
// target month (Jan 31 advances to Feb 29/28, not Mar 2). An unrecognised
// frequency leaves the date unchanged.
func advanceDueDate(due time.Time, freq domain.Frequency) time.Time {
	switch freq {
	case domain.Daily:
		return due.AddDate(0, 0, 1)
	case domain.Weekly:
		return due.AddDate(0, 0, 7)
	case domain.Monthly:
		return addMonthsClamped(due, 1)
	case domain.Yearly:
		return addMonthsClamped(due, 12)
	default:
		return due
	}
}

// addMonthsClamped adds whole months keeping the day-of-month where possible,
// clamping to the target month's last day otherwise. time.AddDate alone would
// normalise Jan 31 + 1 month into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := firstOfMonth.AddDate(0, months, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return target.AddDate(0, 0, day-1)
}

func (s *scheduledTransactionService) CreateScheduledTransaction(ctx context.Context, req dto.CreateScheduledTransactionRequest, creatorUserID string) (*domain.ScheduledTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", req.AccountID, err)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}
	if _, err := s.userRepo.FindUserByID(ctx, creatorUserID); err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", creatorUserID, err)
	}

	now := time.Now()
	st := domain.ScheduledTransaction{
		ScheduledTransactionID: uuid.NewString(),
		Description:            req.Description,
		Amount:                 req.Amount,
		Frequency:              req.Frequency,
		NextDueDate:            req.NextDueDate,
		Type:                   req.Type,
		AccountID:              req.AccountID,
		CategoryID:             req.CategoryID,
		CreatedBy:              creatorUserID,
		Notes:                  req.Notes,
		Active:                 true, // new templates always start active
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.schedRepo.SaveScheduledTransaction(ctx, st); err != nil {
		logger.Error("failed to save scheduled transaction", slog.String("scheduled_transaction_id", st.ScheduledTransactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save scheduled transaction: %w", err)
	}

	logger.Info("scheduled transaction created",
		slog.String("scheduled_transaction_id", st.ScheduledTransactionID),
		slog.String("frequency", string(st.Frequency)))
	return &st, nil
}

func (s *scheduledTransactionService) GetScheduledTransactionByID(ctx context.Context, id string) (*domain.ScheduledTransaction, error) {
	st, err := s.schedRepo.FindScheduledTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled transaction %s: %w", id, err)
	}
	return st, nil
}

func (s *scheduledTransactionService) ListScheduledTransactions(ctx context.Context) ([]domain.ScheduledTransaction, error) {
	sts, err := s.schedRepo.FindAllScheduledTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions: %w", err)
	}
	return sts, nil
}

func (s *scheduledTransactionService) GetScheduledTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransaction, error) {
	sts, err := s.schedRepo.FindScheduledTransactionsByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions for account %s: %w", accountID, err)
	}
	return sts, nil
}

func (s *scheduledTransactionService) GetScheduledTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.ScheduledTransaction, error) {
	sts, err := s.schedRepo.FindScheduledTransactionsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions for category %s: %w", categoryID, err)
	}
	return sts, nil
}

func (s *scheduledTransactionService) GetScheduledTransactionsByUserID(ctx context.Context, userID string) ([]domain.ScheduledTransaction, error) {
	sts, err := s.schedRepo.FindScheduledTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions for user %s: %w", userID, err)
	}
	return sts, nil
}

// GetUpcomingScheduledTransactions returns templates due before the given
// date, including paused ones. This is a preview, not the sweep selection.
func (s *scheduledTransactionService) GetUpcomingScheduledTransactions(ctx context.Context, date time.Time) ([]domain.ScheduledTransaction, error) {
	sts, err := s.schedRepo.FindUpcomingBefore(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming scheduled transactions: %w", err)
	}
	return sts, nil
}

func (s *scheduledTransactionService) UpdateScheduledTransaction(ctx context.Context, id string, req dto.UpdateScheduledTransactionRequest) (*domain.ScheduledTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.schedRepo.FindScheduledTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled transaction %s for update: %w", id, err)
	}

	updated := *existing
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Frequency != nil {
		updated.Frequency = *req.Frequency
	}
	if req.NextDueDate != nil {
		updated.NextDueDate = *req.NextDueDate
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.AccountID != nil && *req.AccountID != existing.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			return nil, fmt.Errorf("failed to resolve account %s: %w", *req.AccountID, err)
		}
		updated.AccountID = *req.AccountID
	}
	if req.CategoryID != nil && *req.CategoryID != existing.CategoryID {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategoryID, err)
		}
		updated.CategoryID = *req.CategoryID
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Active != nil {
		updated.Active = *req.Active
	}
	updated.UpdatedAt = time.Now()

	if err := s.schedRepo.UpdateScheduledTransaction(ctx, updated); err != nil {
		logger.Error("failed to update scheduled transaction", slog.String("scheduled_transaction_id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update scheduled transaction %s: %w", id, err)
	}

	logger.Info("scheduled transaction updated", slog.String("scheduled_transaction_id", id))
	return &updated, nil
}

func (s *scheduledTransactionService) DeleteScheduledTransaction(ctx context.Context, id string) error {
	if err := s.schedRepo.DeleteScheduledTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete scheduled transaction %s: %w", id, err)
	}
	return nil
}

// Execute materialises one transaction from the template with its due date
// advanced by one frequency unit. The booking and the advanced template are
// persisted as one unit of work, so a failure leaves the template untouched
// and a success can never book the same occurrence twice.
func (s *scheduledTransactionService) Execute(ctx context.Context, id string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	st, err := s.schedRepo.FindScheduledTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled transaction %s for execution: %w", id, err)
	}

	now := time.Now()
	advanced := *st
	advanced.NextDueDate = advanceDueDate(st.NextDueDate, st.Frequency)
	advanced.UpdatedAt = now

	txn, err := s.txnSvc.CreateFromSchedule(ctx, advanced, now)
	if err != nil {
		return nil, fmt.Errorf("failed to execute scheduled transaction %s: %w", id, err)
	}

	logger.Info("scheduled transaction executed",
		slog.String("scheduled_transaction_id", id),
		slog.String("transaction_id", txn.TransactionID),
		slog.Time("next_due_date", advanced.NextDueDate))
	return txn, nil
}

// ProcessDue executes every active template whose due date has passed,
// sequentially in store order. It stops at the first failure and reports how
// many templates were executed before it.
func (s *scheduledTransactionService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	due, err := s.schedRepo.FindDueBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find due scheduled transactions: %w", err)
	}

	executed := 0
	for i := range due {
		if _, err := s.Execute(ctx, due[i].ScheduledTransactionID); err != nil {
			logger.Error("sweep aborted",
				slog.String("scheduled_transaction_id", due[i].ScheduledTransactionID),
				slog.Int("executed", executed),
				slog.String("error", err.Error()))
			return executed, err
		}
		executed++
	}

	if executed > 0 {
		logger.Info("sweep completed", slog.Int("executed", executed))
	}
	return executed, nil
}
