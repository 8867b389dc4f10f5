package services

import (
	"context"

	"fintracker/internal/core/domain"
	"fintracker/internal/dto"
)

// CategorySvcFacade is the category service surface consumed by handlers.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	GetRootCategories(ctx context.Context) ([]domain.Category, error)
	GetSubcategories(ctx context.Context, parentID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
