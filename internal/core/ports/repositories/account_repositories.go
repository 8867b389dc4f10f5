package repositories

import (
	"context"
	"time"

	"fintracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error)
	FindAllAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID string) error

	// FindAccountsByIDsForUpdate locks the given account rows FOR UPDATE.
	// Must be called within a transaction; fails with ErrNotFound when any
	// requested account is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adds each delta to its account's balance within
	// the given transaction. Rows should already be locked via
	// FindAccountsByIDsForUpdate.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error
}
