package service

import "errors"

// Validation errors (map to 400)
var (
	ErrUsernameReserved = errors.New("username 'me' is reserved")
	ErrUserExists       = errors.New("username or email already in use")
	ErrInvalidCode      = errors.New("invalid confirmation code")
	ErrInvalidRole      = errors.New("invalid role")
	ErrRoleChange       = errors.New("changing role requires admin privileges")
	ErrReviewExists     = errors.New("you have already reviewed this title")
	ErrSlugExists       = errors.New("slug already in use")
	ErrTitleExists      = errors.New("a title with this name and year already exists")
	ErrYearInFuture     = errors.New("year cannot be in the future")
	ErrBadCategoryRef   = errors.New("unknown category slug")
	ErrBadGenreRef      = errors.New("unknown genre slug")
)

// Not-found errors (map to 404)
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrTitleNotFound    = errors.New("title not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCommentNotFound  = errors.New("comment not found")
)

// Authorization and delivery errors
var (
	ErrForbidden    = errors.New("you don't have permission to modify this resource")
	ErrCodeDelivery = errors.New("failed to deliver confirmation code")
)
