package dto

import "titlehub/internal/models"

// CreateTitleRequest: write representation referencing category and genres
// by slug.
type CreateTitleRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=256"`
	Year        int      `json:"year" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Genre       []string `json:"genre" binding:"required,min=1"`
}

// UpdateTitleRequest: partial update; nil fields stay untouched.
type UpdateTitleRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=256"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

// TitleResponse: read representation with nested category/genres and the
// computed rating. Rating is null when the title has no reviews.
type TitleResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *int             `json:"rating"`
	Description string           `json:"description"`
	Category    *CategoryResponse `json:"category"`
	Genre       []GenreResponse  `json:"genre"`
}

func FromModelToTitleResponse(title *models.Title, rating *int) *TitleResponse {
	resp := &TitleResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Rating:      rating,
		Description: title.Description,
		Genre:       make([]GenreResponse, 0, len(title.Genres)),
	}
	if title.Category != nil {
		resp.Category = FromModelToCategoryResponse(title.Category)
	}
	for i := range title.Genres {
		resp.Genre = append(resp.Genre, *FromModelToGenreResponse(&title.Genres[i]))
	}
	return resp
}
