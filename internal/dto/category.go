package dto

import (
	"fintracker/internal/core/domain"
)

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name             string              `json:"name" binding:"required"`
	Description      string              `json:"description"`
	Type             domain.CategoryType `json:"type" binding:"required,oneof=EXPENSE INCOME"`
	ParentCategoryID *string             `json:"parentCategoryID,omitempty"`
}

// UpdateCategoryRequest is the payload for updating a category. Nil fields are
// left unchanged. An empty ParentCategoryID clears the parent link, turning
// the category into a root category.
type UpdateCategoryRequest struct {
	Name             *string              `json:"name,omitempty"`
	Description      *string              `json:"description,omitempty"`
	Type             *domain.CategoryType `json:"type,omitempty" binding:"omitempty,oneof=EXPENSE INCOME"`
	ParentCategoryID *string              `json:"parentCategoryID,omitempty"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	CategoryID       string              `json:"categoryID"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Type             domain.CategoryType `json:"type"`
	ParentCategoryID string              `json:"parentCategoryID,omitempty"`
}

// ToCategoryResponse converts a domain category to its API representation.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:       c.CategoryID,
		Name:             c.Name,
		Description:      c.Description,
		Type:             c.Type,
		ParentCategoryID: c.ParentCategoryID,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
