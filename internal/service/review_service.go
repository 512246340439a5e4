package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"titlehub/internal/dto"
	"titlehub/internal/models"
	"titlehub/internal/repository"
)

// Actor identifies the authenticated requester for permission checks.
type Actor struct {
	UserID string
	Role   models.Role
}

// CanModify reports whether the actor may mutate a resource owned by
// ownerID: owners, moderators, and admins may.
func (a Actor) CanModify(ownerID string) bool {
	return a.UserID == ownerID || a.Role.CanModerate()
}

type ReviewService interface {
	ListByTitle(ctx context.Context, titleID int64, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error)
	Get(ctx context.Context, titleID, reviewID int64) (*dto.ReviewResponse, error)
	Create(ctx context.Context, titleID int64, actor Actor, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, titleID, reviewID int64, actor Actor, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID int64, actor Actor) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  repository.TitleRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, titleRepo repository.TitleRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, titleRepo: titleRepo}
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error) {
	title, err := s.getTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByTitle(ctx, titleID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i], title.Name))
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (*dto.ReviewResponse, error) {
	title, err := s.getTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	review, err := s.getScopedReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review, title.Name), nil
}

// Create posts a review authored by the requesting user. The one-review-per-
// user-per-title rule is checked here and backstopped by the database unique
// constraint; both paths surface ErrReviewExists.
func (s *reviewService) Create(ctx context.Context, titleID int64, actor Actor, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	title, err := s.getTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsByUserAndTitle(ctx, actor.UserID, titleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewExists
	}

	review := &models.Review{
		TitleID: titleID,
		UserID:  actor.UserID,
		Text:    req.Text,
		Score:   req.Score,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent create; same answer.
			return nil, ErrReviewExists
		}
		return nil, err
	}

	// Reload with author data
	review, err = s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review, title.Name), nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, actor Actor, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	title, err := s.getTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	review, err := s.getScopedReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(review.UserID) {
		return nil, ErrForbidden
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review, title.Name), nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64, actor Actor) error {
	if _, err := s.getTitle(ctx, titleID); err != nil {
		return err
	}
	review, err := s.getScopedReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !actor.CanModify(review.UserID) {
		return ErrForbidden
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewService) getTitle(ctx context.Context, titleID int64) (*models.Title, error) {
	title, err := s.titleRepo.GetByID(ctx, titleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	return title, nil
}

// getScopedReview loads the review and verifies it belongs to the title in
// the URL path; a review under another title is a 404, not a leak.
func (s *reviewService) getScopedReview(ctx context.Context, titleID, reviewID int64) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.TitleID != titleID {
		return nil, ErrReviewNotFound
	}
	return review, nil
}
