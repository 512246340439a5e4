package main

import (
	"fmt"
	"log"

	"titlehub/internal/config"
	"titlehub/internal/database"
	"titlehub/internal/handler"
	"titlehub/internal/logger"
	"titlehub/internal/repository"
	"titlehub/internal/router"
	"titlehub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	slogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg, slogger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg, slogger)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	titleRepo := repository.NewTitleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	codeStore := service.NewRedisCodeStore(redisClient)
	var codeSender service.CodeSender
	if cfg.IsDevelopment() {
		// No mail relay in dev setups, codes go to the log
		codeSender = service.NewLogCodeSender(slogger)
	} else {
		codeSender = service.NewSMTPCodeSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)
	}

	authService := service.NewAuthService(userRepo, codeStore, codeSender, cfg)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	genreService := service.NewGenreService(genreRepo)
	titleService := service.NewTitleService(titleRepo, categoryRepo, genreRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, titleRepo)
	commentService := service.NewCommentService(commentRepo, reviewRepo)

	r := router.New(cfg, authService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Category: handler.NewCategoryHandler(categoryService),
		Genre:    handler.NewGenreHandler(genreService),
		Title:    handler.NewTitleHandler(titleService),
		Review:   handler.NewReviewHandler(reviewService),
		Comment:  handler.NewCommentHandler(commentService),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	slogger.Info("starting api server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
