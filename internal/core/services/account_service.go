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

// accountService manages accounts. Balances are only ever touched here at
// creation (opening balance); afterwards the transaction repository owns them.
type accountService struct {
	accountRepo portsrepo.AccountRepository
	userRepo    portsrepo.UserRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, userRepo portsrepo.UserRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, userRepo: userRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, creatorUserID); err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", creatorUserID, err)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		UserID:      creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("failed to save account", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) GetAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for user %s: %w", userID, err)
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s for update: %w", accountID, err)
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.AccountType != nil {
		updated.AccountType = *req.AccountType
	}
	if req.Balance != nil {
		// manual balance correction, outside the transaction flow
		updated.Balance = *req.Balance
	}
	updated.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, updated); err != nil {
		logger.Error("failed to update account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	logger.Info("account updated", slog.String("account_id", accountID))
	return &updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return nil
}
