package dto

import "titlehub/internal/models"

// CreateGenreRequest for creating a genre
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=256"`
	Slug string `json:"slug" binding:"required,min=1,max=50"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func FromModelToGenreResponse(genre *models.Genre) *GenreResponse {
	return &GenreResponse{
		Name: genre.Name,
		Slug: genre.Slug,
	}
}
