package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
	"fintracker/internal/utils/pagination"
)

const transactionColumns = `transaction_id, description, amount, transaction_date, transaction_type, account_id, category_id, created_by, scheduled_transaction_id, notes, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
	schedRepo   portsrepo.ScheduledTransactionRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
// It needs the account repository to lock and adjust balances inside its own
// database transactions, and the scheduled transaction repository to write
// back templates in the same unit of work as a scheduled booking.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository, schedRepo portsrepo.ScheduledTransactionRepository) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		schedRepo:      schedRepo,
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	var scheduledID sql.NullString
	err := row.Scan(
		&t.TransactionID,
		&t.Description,
		&t.Amount,
		&t.TransactionDate,
		&t.Type,
		&t.AccountID,
		&t.CategoryID,
		&t.CreatedBy,
		&scheduledID,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if scheduledID.Valid {
		t.ScheduledTransactionID = &scheduledID.String
	}
	return t, err
}

func accountIDsFromDeltas(deltas map[string]decimal.Decimal) []string {
	ids := make([]string, 0, len(deltas))
	for id, delta := range deltas {
		if !delta.IsZero() {
			ids = append(ids, id)
		}
	}
	return ids
}

// withBalances runs fn inside one database transaction together with the
// balance adjustments: affected account rows are locked first, fn performs the
// transaction row change, then the deltas are applied. Everything commits or
// rolls back as a unit.
func (r *PgxTransactionRepository) withBalances(ctx context.Context, deltas map[string]decimal.Decimal, now time.Time, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDsFromDeltas(deltas)); err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, description, amount, transaction_date, transaction_type, account_id, category_id, created_by, scheduled_transaction_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.Description,
		txn.Amount,
		txn.TransactionDate,
		txn.Type,
		txn.AccountID,
		txn.CategoryID,
		txn.CreatedBy,
		txn.ScheduledTransactionID,
		txn.Notes,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
			}
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: transaction %s references a missing row", apperrors.ErrConflict, txn.TransactionID)
			}
		}
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// SaveTransaction inserts a transaction and applies its balance deltas
// atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	return r.withBalances(ctx, deltas, txn.UpdatedAt, func(tx pgx.Tx) error {
		return r.insertTransaction(ctx, tx, txn)
	})
}

// SaveTransactionFromSchedule inserts a transaction booked from a scheduled
// transaction and writes the template row back in the same database
// transaction, so the booking, the balance deltas and the advanced due date
// commit or roll back as one unit.
func (r *PgxTransactionRepository) SaveTransactionFromSchedule(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal, st domain.ScheduledTransaction) error {
	return r.withBalances(ctx, deltas, txn.UpdatedAt, func(tx pgx.Tx) error {
		if err := r.insertTransaction(ctx, tx, txn); err != nil {
			return err
		}
		return r.schedRepo.UpdateScheduledTransactionInTx(ctx, tx, st)
	})
}

// UpdateTransaction updates a transaction row and applies the reversal and
// re-application deltas atomically.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	query := `
		UPDATE transactions
		SET description = $2, amount = $3, transaction_date = $4, transaction_type = $5, account_id = $6, category_id = $7, notes = $8, updated_at = $9
		WHERE transaction_id = $1;
	`

	return r.withBalances(ctx, deltas, txn.UpdatedAt, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, query,
			txn.TransactionID,
			txn.Description,
			txn.Amount,
			txn.TransactionDate,
			txn.Type,
			txn.AccountID,
			txn.CategoryID,
			txn.Notes,
			txn.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
		}
		if ct.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction with ID %s not found", txn.TransactionID))
		}
		return nil
	})
}

// DeleteTransaction removes a transaction row and reverses its balance effect
// atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, deltas map[string]decimal.Decimal) error {
	return r.withBalances(ctx, deltas, time.Now(), func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
		if err != nil {
			return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
		}
		if ct.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction with ID %s not found", transactionID))
		}
		return nil
	})
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction with ID %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// FindAllTransactions retrieves all transactions, most recent first.
func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query)
}

// FindTransactionsByAccountID returns one page of the account's transactions
// ordered by (transaction_date, created_at) descending. The cursor encodes
// the sort key of the last row of the previous page; a returned nil token
// means there are no more rows.
func (r *PgxTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, txnDate, createdAt)
	}

	// fetch one extra row to know whether another page exists
	query += fmt.Sprintf(` ORDER BY transaction_date DESC, created_at DESC LIMIT %d;`, limit+1)

	txns, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		newToken = &token
	}
	return txns, newToken, nil
}

// FindTransactionsByCategoryID retrieves all transactions in a category.
func (r *PgxTransactionRepository) FindTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE category_id = $1 ORDER BY transaction_date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query, categoryID)
}

// FindTransactionsByUserID retrieves all transactions created by a user.
func (r *PgxTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE created_by = $1 ORDER BY transaction_date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query, userID)
}

// FindTransactionsByDateRange retrieves transactions dated within [start, end].
func (r *PgxTransactionRepository) FindTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_date BETWEEN $1 AND $2 ORDER BY transaction_date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query, start, end)
}

// FindTransactionsByUserIDAndDateRange retrieves a user's transactions dated
// within [start, end].
func (r *PgxTransactionRepository) FindTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE created_by = $1 AND transaction_date BETWEEN $2 AND $3 ORDER BY transaction_date DESC, created_at DESC;`
	return r.queryTransactions(ctx, query, userID, start, end)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return txns, nil
}
