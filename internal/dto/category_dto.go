package dto

import "titlehub/internal/models"

// CreateCategoryRequest for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=256"`
	Slug string `json:"slug" binding:"required,min=1,max=50"`
}

// CategoryResponse deliberately omits the numeric id; categories are
// addressed by slug.
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func FromModelToCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
	}
}
