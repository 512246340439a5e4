package dto

import (
	"time"

	"titlehub/internal/models"
)

// CreateReviewRequest for posting a review. The author always comes from the
// access token, never the payload.
type CreateReviewRequest struct {
	Text  string `json:"text" binding:"required,min=1"`
	Score int    `json:"score" binding:"required,min=1,max=10"`
}

// UpdateReviewRequest for partial review edits
type UpdateReviewRequest struct {
	Text  *string `json:"text" binding:"omitempty,min=1"`
	Score *int    `json:"score" binding:"omitempty,min=1,max=10"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	Title   string    `json:"title"`
	PubDate time.Time `json:"pub_date"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review, titleName string) *ReviewResponse {
	return &ReviewResponse{
		ID:      review.ID,
		Text:    review.Text,
		Author:  review.User.Username,
		Score:   review.Score,
		Title:   titleName,
		PubDate: review.PubDate,
	}
}
