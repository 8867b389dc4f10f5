package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
)

const investmentColumns = `investment_id, name, investment_type, initial_amount, current_value, start_date, end_date, expected_return_rate, user_id, notes, ticker, created_at, updated_at`

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investment data.
func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

func scanInvestment(row pgx.Row) (domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(
		&inv.InvestmentID,
		&inv.Name,
		&inv.InvestmentType,
		&inv.InitialAmount,
		&inv.CurrentValue,
		&inv.StartDate,
		&inv.EndDate,
		&inv.ExpectedReturnRate,
		&inv.UserID,
		&inv.Notes,
		&inv.Ticker,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

// SaveInvestment inserts a new investment.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	query := `
		INSERT INTO investments (investment_id, name, investment_type, initial_amount, current_value, start_date, end_date, expected_return_rate, user_id, notes, ticker, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		investment.InvestmentID,
		investment.Name,
		investment.InvestmentType,
		investment.InitialAmount,
		investment.CurrentValue,
		investment.StartDate,
		investment.EndDate,
		investment.ExpectedReturnRate,
		investment.UserID,
		investment.Notes,
		investment.Ticker,
		investment.CreatedAt,
		investment.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: investment with ID %s already exists", apperrors.ErrDuplicate, investment.InvestmentID)
			}
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: investment owner %s does not exist", apperrors.ErrConflict, investment.UserID)
			}
		}
		return fmt.Errorf("failed to save investment %s: %w", investment.InvestmentID, err)
	}
	return nil
}

// FindInvestmentByID retrieves an investment by its ID.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1;`

	inv, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("investment with ID %s not found", investmentID))
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	return &inv, nil
}

// FindAllInvestments retrieves all investments.
func (r *PgxInvestmentRepository) FindAllInvestments(ctx context.Context) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments ORDER BY start_date DESC;`
	return r.queryInvestments(ctx, query)
}

func (r *PgxInvestmentRepository) FindInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY start_date DESC;`
	return r.queryInvestments(ctx, query, userID)
}

func (r *PgxInvestmentRepository) FindInvestmentsByType(ctx context.Context, investmentType string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_type = $1 ORDER BY start_date DESC;`
	return r.queryInvestments(ctx, query, investmentType)
}

func (r *PgxInvestmentRepository) FindInvestmentsByUserIDAndType(ctx context.Context, userID string, investmentType string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 AND investment_type = $2 ORDER BY start_date DESC;`
	return r.queryInvestments(ctx, query, userID, investmentType)
}

// UpdateInvestment updates an investment's mutable fields.
func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	query := `
		UPDATE investments
		SET name = $2, investment_type = $3, initial_amount = $4, current_value = $5, start_date = $6, end_date = $7, expected_return_rate = $8, notes = $9, ticker = $10, updated_at = $11
		WHERE investment_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		investment.InvestmentID,
		investment.Name,
		investment.InvestmentType,
		investment.InitialAmount,
		investment.CurrentValue,
		investment.StartDate,
		investment.EndDate,
		investment.ExpectedReturnRate,
		investment.Notes,
		investment.Ticker,
		investment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", investment.InvestmentID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("investment with ID %s not found", investment.InvestmentID))
	}
	return nil
}

// DeleteInvestment removes an investment.
func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM investments WHERE investment_id = $1;`, investmentID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("investment with ID %s not found", investmentID))
	}
	return nil
}

func (r *PgxInvestmentRepository) queryInvestments(ctx context.Context, query string, args ...any) ([]domain.Investment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		investments = append(investments, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading investment rows: %w", err)
	}
	return investments, nil
}
