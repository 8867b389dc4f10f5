package repositories

import (
	"context"

	"fintracker/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindAllCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	FindRootCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoriesByParentID(ctx context.Context, parentID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}
