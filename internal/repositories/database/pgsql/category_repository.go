package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
)

const categoryColumns = `category_id, name, description, category_type, parent_category_id, created_at, updated_at`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	var parentID sql.NullString
	err := row.Scan(
		&c.CategoryID,
		&c.Name,
		&c.Description,
		&c.Type,
		&parentID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if parentID.Valid {
		c.ParentCategoryID = parentID.String
	}
	return c, err
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, name, description, category_type, parent_category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var parentID sql.NullString
	if category.ParentCategoryID != "" {
		parentID = sql.NullString{String: category.ParentCategoryID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Description,
		category.Type,
		parentID,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, category.CategoryID)
			}
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: parent category %s does not exist", apperrors.ErrConflict, category.ParentCategoryID)
			}
		}
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	category, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("category with ID %s not found", categoryID))
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return &category, nil
}

// FindAllCategories retrieves all categories.
func (r *PgxCategoryRepository) FindAllCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`
	return r.queryCategories(ctx, query)
}

func (r *PgxCategoryRepository) FindCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_type = $1 ORDER BY name;`
	return r.queryCategories(ctx, query, categoryType)
}

// FindRootCategories retrieves categories with no parent.
func (r *PgxCategoryRepository) FindRootCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_category_id IS NULL ORDER BY name;`
	return r.queryCategories(ctx, query)
}

// FindCategoriesByParentID retrieves direct children of a category.
func (r *PgxCategoryRepository) FindCategoriesByParentID(ctx context.Context, parentID string) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_category_id = $1 ORDER BY name;`
	return r.queryCategories(ctx, query, parentID)
}

// UpdateCategory updates a category's mutable fields, the parent link
// included. An empty ParentCategoryID is stored as NULL, making the category
// a root category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, category_type = $4, parent_category_id = $5, updated_at = $6
		WHERE category_id = $1;
	`
	var parentID sql.NullString
	if category.ParentCategoryID != "" {
		parentID = sql.NullString{String: category.ParentCategoryID, Valid: true}
	}

	ct, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Description,
		category.Type,
		parentID,
		category.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: parent category %s does not exist", apperrors.ErrConflict, category.ParentCategoryID)
		}
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category with ID %s not found", category.CategoryID))
	}
	return nil
}

// DeleteCategory removes a category. Fails with ErrConflict when transactions
// or subcategories still reference it.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: category %s is still referenced", apperrors.ErrConflict, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category with ID %s not found", categoryID))
	}
	return nil
}

func (r *PgxCategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category rows: %w", err)
	}
	return categories, nil
}
