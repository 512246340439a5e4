package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"titlehub/internal/service"
)

// respondError maps domain errors onto HTTP statuses so every handler
// answers consistently.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameReserved),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrRoleChange),
		errors.Is(err, service.ErrReviewExists),
		errors.Is(err, service.ErrSlugExists),
		errors.Is(err, service.ErrTitleExists),
		errors.Is(err, service.ErrYearInFuture),
		errors.Is(err, service.ErrBadCategoryRef),
		errors.Is(err, service.ErrBadGenreRef):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrGenreNotFound),
		errors.Is(err, service.ErrTitleNotFound),
		errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCodeDelivery):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pagination reads page/page_size query params with the usual bounds.
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
