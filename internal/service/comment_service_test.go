package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"titlehub/internal/dto"
	"titlehub/internal/models"
)

func newTestCommentService() (CommentService, *MockCommentRepository, *MockReviewRepository) {
	commentRepo := new(MockCommentRepository)
	reviewRepo := new(MockReviewRepository)
	return NewCommentService(commentRepo, reviewRepo), commentRepo, reviewRepo
}

func scopedReview(reviewRepo *MockReviewRepository, reviewID, titleID int64) {
	reviewRepo.On("GetByID", mock.Anything, reviewID).
		Return(&models.Review{ID: reviewID, TitleID: titleID, UserID: "owner"}, nil)
}

func TestCommentCreate_UnknownReview(t *testing.T) {
	svc, commentRepo, reviewRepo := newTestCommentService()

	reviewRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 1, 404, Actor{UserID: "uid-1", Role: models.RoleUser},
		dto.CreateCommentRequest{Text: "hi"})

	assert.ErrorIs(t, err, ErrReviewNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentCreate_ReviewUnderOtherTitle(t *testing.T) {
	svc, _, reviewRepo := newTestCommentService()
	scopedReview(reviewRepo, 42, 2)

	_, err := svc.Create(context.Background(), 1, 42, Actor{UserID: "uid-1", Role: models.RoleUser},
		dto.CreateCommentRequest{Text: "hi"})

	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestCommentCreate_AuthorComesFromToken(t *testing.T) {
	svc, commentRepo, reviewRepo := newTestCommentService()
	scopedReview(reviewRepo, 42, 1)

	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.UserID == "uid-1" && c.ReviewID == 42
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Comment).ID = 7
	}).Return(nil)
	commentRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Comment{
		ID:       7,
		ReviewID: 42,
		UserID:   "uid-1",
		Text:     "hi",
		User:     models.User{ID: "uid-1", Username: "alice"},
	}, nil)

	resp, err := svc.Create(context.Background(), 1, 42, Actor{UserID: "uid-1", Role: models.RoleUser},
		dto.CreateCommentRequest{Text: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Author)
	commentRepo.AssertExpectations(t)
}

func TestCommentGet_WrongReviewScope(t *testing.T) {
	svc, commentRepo, reviewRepo := newTestCommentService()
	scopedReview(reviewRepo, 42, 1)

	commentRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Comment{ID: 7, ReviewID: 99, UserID: "uid-1"}, nil)

	_, err := svc.Get(context.Background(), 1, 42, 7)

	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentUpdate_StrangerForbidden(t *testing.T) {
	svc, commentRepo, reviewRepo := newTestCommentService()
	scopedReview(reviewRepo, 42, 1)

	commentRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Comment{ID: 7, ReviewID: 42, UserID: "owner"}, nil)

	_, err := svc.Update(context.Background(), 1, 42, 7, Actor{UserID: "stranger", Role: models.RoleUser},
		dto.UpdateCommentRequest{Text: "edited"})

	assert.ErrorIs(t, err, ErrForbidden)
	commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommentDelete_ModeratorAllowed(t *testing.T) {
	svc, commentRepo, reviewRepo := newTestCommentService()
	scopedReview(reviewRepo, 42, 1)

	commentRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Comment{ID: 7, ReviewID: 42, UserID: "owner"}, nil)
	commentRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

	err := svc.Delete(context.Background(), 1, 42, 7, Actor{UserID: "mod-1", Role: models.RoleModerator})

	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}
