package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
)

// categoryService manages the category tree.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	parentID := ""
	if req.ParentCategoryID != nil && *req.ParentCategoryID != "" {
		parent, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentCategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent category %s: %w", *req.ParentCategoryID, err)
		}
		if parent.Type != req.Type {
			return nil, fmt.Errorf("%w: subcategory type %s does not match parent type %s", apperrors.ErrValidation, req.Type, parent.Type)
		}
		parentID = parent.CategoryID
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:       uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Type:             req.Type,
		ParentCategoryID: parentID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("failed to save category", slog.String("category_id", category.CategoryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("category created", slog.String("category_id", category.CategoryID), slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategoriesByType(ctx, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories of type %s: %w", categoryType, err)
	}
	return categories, nil
}

func (s *categoryService) GetRootCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindRootCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetSubcategories(ctx context.Context, parentID string) ([]domain.Category, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, parentID); err != nil {
		return nil, fmt.Errorf("failed to resolve parent category %s: %w", parentID, err)
	}
	categories, err := s.categoryRepo.FindCategoriesByParentID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories of %s: %w", parentID, err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s for update: %w", categoryID, err)
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.ParentCategoryID != nil {
		if *req.ParentCategoryID == "" {
			updated.ParentCategoryID = ""
		} else {
			if *req.ParentCategoryID == categoryID {
				return nil, fmt.Errorf("%w: category %s cannot be its own parent", apperrors.ErrValidation, categoryID)
			}
			parent, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentCategoryID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve parent category %s: %w", *req.ParentCategoryID, err)
			}
			if parent.Type != updated.Type {
				return nil, fmt.Errorf("%w: subcategory type %s does not match parent type %s", apperrors.ErrValidation, updated.Type, parent.Type)
			}
			updated.ParentCategoryID = parent.CategoryID
		}
	}
	updated.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, updated); err != nil {
		logger.Error("failed to update category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}

	logger.Info("category updated", slog.String("category_id", categoryID))
	return &updated, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}
