package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titlehub/internal/config"
	"titlehub/internal/handler"
	"titlehub/internal/middleware"
	"titlehub/internal/service"
)

// Handlers bundles every endpoint group for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Genre    *handler.GenreHandler
	Title    *handler.TitleHandler
	Review   *handler.ReviewHandler
	Comment  *handler.CommentHandler
}

// New wires routes and middleware.
func New(cfg *config.Config, authService service.AuthService, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.Auth(authService)

	api := r.Group("/api/v1")

	// The auth endpoints stay outside OptionalAuth: a client re-authenticating
	// with a stale bearer header still sent must reach the exchange.
	authRoutes := api.Group("/auth", middleware.RateLimit(cfg.AuthRateLimitRPS))
	h.Auth.RegisterRoutes(authRoutes)

	resources := api.Group("", middleware.OptionalAuth(authService))
	h.User.RegisterRoutes(resources, auth)
	h.Category.RegisterRoutes(resources, auth)
	h.Genre.RegisterRoutes(resources, auth)
	h.Title.RegisterRoutes(resources, auth)
	h.Review.RegisterRoutes(resources, auth)
	h.Comment.RegisterRoutes(resources, auth)

	return r
}
