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

// transactionService books, amends and removes transactions, keeping the
// affected account balances consistent with the stored rows.
type transactionService struct {
	txnRepo      portsrepo.TransactionRepository
	accountRepo  portsrepo.AccountRepository
	categoryRepo portsrepo.CategoryRepository
	userRepo     portsrepo.UserRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CategoryRepository,
	userRepo portsrepo.UserRepository,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveReferences verifies that the account, category and creator a
// transaction points at all exist before anything is written.
func (s *transactionService) resolveReferences(ctx context.Context, accountID, categoryID, userID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to resolve account %s: %w", accountID, err)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	return nil
}

func (s *transactionService) create(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.resolveReferences(ctx, txn.AccountID, txn.CategoryID, txn.CreatedBy); err != nil {
		return nil, err
	}

	deltas := Recompute(nil, TransactionEffect(&txn))
	if err := s.txnRepo.SaveTransaction(ctx, txn, deltas); err != nil {
		logger.Error("failed to save transaction", slog.String("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// CreateTransaction books a new transaction and applies its balance effect to
// the account atomically with the insert.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		Type:            req.Type,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		CreatedBy:       creatorUserID,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return s.create(ctx, txn)
}

// CreateFromSchedule books a transaction materialised from a scheduled
// transaction template, dated now and carrying the back-reference. The
// template row, including the due date the caller already advanced, is
// written back in the same database transaction as the booking and its
// balance deltas.
func (s *transactionService) CreateFromSchedule(ctx context.Context, st domain.ScheduledTransaction, now time.Time) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stID := st.ScheduledTransactionID
	txn := domain.Transaction{
		TransactionID:          uuid.NewString(),
		Description:            st.Description,
		Amount:                 st.Amount,
		TransactionDate:        now,
		Type:                   st.Type,
		AccountID:              st.AccountID,
		CategoryID:             st.CategoryID,
		CreatedBy:              st.CreatedBy,
		ScheduledTransactionID: &stID,
		Notes:                  st.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.resolveReferences(ctx, txn.AccountID, txn.CategoryID, txn.CreatedBy); err != nil {
		return nil, err
	}

	deltas := Recompute(nil, TransactionEffect(&txn))
	if err := s.txnRepo.SaveTransactionFromSchedule(ctx, txn, deltas, st); err != nil {
		logger.Error("failed to book scheduled transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("scheduled_transaction_id", stID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to book scheduled transaction: %w", err)
	}

	logger.Info("transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// GetTransactionsByAccountID returns one page of the account's transactions,
// most recent first, plus the token for the following page when one exists.
func (s *transactionService) GetTransactionsByAccountID(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", accountID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	txns, nextToken, err := s.txnRepo.FindTransactionsByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) GetTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for category %s: %w", categoryID, err)
	}
	return txns, nil
}

func (s *transactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return txns, nil
}

func (s *transactionService) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by date range: %w", err)
	}
	return txns, nil
}

func (s *transactionService) GetTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s by date range: %w", userID, err)
	}
	return txns, nil
}

// UpdateTransaction amends a transaction. The stored balance effect is
// reversed and the new effect applied as two independent corrections, so
// moving a transaction between accounts fixes both balances.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s for update: %w", transactionID, err)
	}

	updated := *existing
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		updated.TransactionDate = *req.TransactionDate
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
	updated.UpdatedAt = time.Now()

	deltas := Recompute(TransactionEffect(existing), TransactionEffect(&updated))
	if err := s.txnRepo.UpdateTransaction(ctx, updated, deltas); err != nil {
		logger.Error("failed to update transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	logger.Info("transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to get transaction %s for delete: %w", transactionID, err)
	}

	deltas := Recompute(TransactionEffect(existing), nil)
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, deltas); err != nil {
		logger.Error("failed to delete transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	logger.Info("transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
