package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
)

const scheduledTransactionColumns = `scheduled_transaction_id, description, amount, frequency, next_due_date, transaction_type, account_id, category_id, created_by, notes, active, created_at, updated_at`

type PgxScheduledTransactionRepository struct {
	BaseRepository
}

// newPgxScheduledTransactionRepository creates a new repository for scheduled
// transaction data.
func newPgxScheduledTransactionRepository(pool *pgxpool.Pool) *PgxScheduledTransactionRepository {
	return &PgxScheduledTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScheduledTransactionRepository = (*PgxScheduledTransactionRepository)(nil)

func scanScheduledTransaction(row pgx.Row) (domain.ScheduledTransaction, error) {
	var st domain.ScheduledTransaction
	err := row.Scan(
		&st.ScheduledTransactionID,
		&st.Description,
		&st.Amount,
		&st.Frequency,
		&st.NextDueDate,
		&st.Type,
		&st.AccountID,
		&st.CategoryID,
		&st.CreatedBy,
		&st.Notes,
		&st.Active,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	return st, err
}

// SaveScheduledTransaction inserts a new scheduled transaction.
func (r *PgxScheduledTransactionRepository) SaveScheduledTransaction(ctx context.Context, st domain.ScheduledTransaction) error {
	query := `
		INSERT INTO scheduled_transactions (scheduled_transaction_id, description, amount, frequency, next_due_date, transaction_type, account_id, category_id, created_by, notes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		st.ScheduledTransactionID,
		st.Description,
		st.Amount,
		st.Frequency,
		st.NextDueDate,
		st.Type,
		st.AccountID,
		st.CategoryID,
		st.CreatedBy,
		st.Notes,
		st.Active,
		st.CreatedAt,
		st.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: scheduled transaction with ID %s already exists", apperrors.ErrDuplicate, st.ScheduledTransactionID)
			}
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: scheduled transaction %s references a missing row", apperrors.ErrConflict, st.ScheduledTransactionID)
			}
		}
		return fmt.Errorf("failed to save scheduled transaction %s: %w", st.ScheduledTransactionID, err)
	}
	return nil
}

// FindScheduledTransactionByID retrieves a scheduled transaction by its ID.
func (r *PgxScheduledTransactionRepository) FindScheduledTransactionByID(ctx context.Context, id string) (*domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions WHERE scheduled_transaction_id = $1;`

	st, err := scanScheduledTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("scheduled transaction with ID %s not found", id))
		}
		return nil, fmt.Errorf("failed to find scheduled transaction %s: %w", id, err)
	}
	return &st, nil
}

// FindAllScheduledTransactions retrieves all scheduled transactions.
func (r *PgxScheduledTransactionRepository) FindAllScheduledTransactions(ctx context.Context) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions ORDER BY next_due_date;`
	return r.queryScheduledTransactions(ctx, query)
}

func (r *PgxScheduledTransactionRepository) FindScheduledTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions WHERE account_id = $1 ORDER BY next_due_date;`
	return r.queryScheduledTransactions(ctx, query, accountID)
}

func (r *PgxScheduledTransactionRepository) FindScheduledTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions WHERE category_id = $1 ORDER BY next_due_date;`
	return r.queryScheduledTransactions(ctx, query, categoryID)
}

func (r *PgxScheduledTransactionRepository) FindScheduledTransactionsByUserID(ctx context.Context, userID string) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions WHERE created_by = $1 ORDER BY next_due_date;`
	return r.queryScheduledTransactions(ctx, query, userID)
}

// FindDueBefore returns active scheduled transactions whose next due date is
// strictly before now. This is the sweep's selection.
func (r *PgxScheduledTransactionRepository) FindDueBefore(ctx context.Context, now time.Time) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions WHERE active AND next_due_date < $1 ORDER BY next_due_date;`
	return r.queryScheduledTransactions(ctx, query, now)
}

// FindUpcomingBefore returns scheduled transactions due before the given date
// regardless of the active flag.
func (r *PgxScheduledTransactionRepository) FindUpcomingBefore(ctx context.Context, date time.Time) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledTransactionColumns + ` FROM scheduled_transactions WHERE next_due_date < $1 ORDER BY next_due_date;`
	return r.queryScheduledTransactions(ctx, query, date)
}

// execer is satisfied by both the pool and an open pgx transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *PgxScheduledTransactionRepository) update(ctx context.Context, db execer, st domain.ScheduledTransaction) error {
	query := `
		UPDATE scheduled_transactions
		SET description = $2, amount = $3, frequency = $4, next_due_date = $5, transaction_type = $6, account_id = $7, category_id = $8, notes = $9, active = $10, updated_at = $11
		WHERE scheduled_transaction_id = $1;
	`
	ct, err := db.Exec(ctx, query,
		st.ScheduledTransactionID,
		st.Description,
		st.Amount,
		st.Frequency,
		st.NextDueDate,
		st.Type,
		st.AccountID,
		st.CategoryID,
		st.Notes,
		st.Active,
		st.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update scheduled transaction %s: %w", st.ScheduledTransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("scheduled transaction with ID %s not found", st.ScheduledTransactionID))
	}
	return nil
}

// UpdateScheduledTransaction updates a scheduled transaction's mutable fields.
func (r *PgxScheduledTransactionRepository) UpdateScheduledTransaction(ctx context.Context, st domain.ScheduledTransaction) error {
	return r.update(ctx, r.Pool, st)
}

// UpdateScheduledTransactionInTx updates a scheduled transaction inside an
// open database transaction, committing or rolling back with it.
func (r *PgxScheduledTransactionRepository) UpdateScheduledTransactionInTx(ctx context.Context, tx pgx.Tx, st domain.ScheduledTransaction) error {
	return r.update(ctx, tx, st)
}

// DeleteScheduledTransaction removes a scheduled transaction. Transactions
// already spawned from it are kept; their back-reference is cleared by the
// schema's ON DELETE SET NULL.
func (r *PgxScheduledTransactionRepository) DeleteScheduledTransaction(ctx context.Context, id string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM scheduled_transactions WHERE scheduled_transaction_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled transaction %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("scheduled transaction with ID %s not found", id))
	}
	return nil
}

func (r *PgxScheduledTransactionRepository) queryScheduledTransactions(ctx context.Context, query string, args ...any) ([]domain.ScheduledTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled transactions: %w", err)
	}
	defer rows.Close()

	var sts []domain.ScheduledTransaction
	for rows.Next() {
		st, err := scanScheduledTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled transaction row: %w", err)
		}
		sts = append(sts, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading scheduled transaction rows: %w", err)
	}
	return sts, nil
}
