package main

import (
	"log"
	"net/http"

	_ "bunnypost/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bunnypost/internal/auth"
	"bunnypost/internal/cache"
	"bunnypost/internal/config"
	"bunnypost/internal/db"
	"bunnypost/internal/handler"
	"bunnypost/internal/model"
	"bunnypost/internal/repository"
	"bunnypost/internal/router"
	"bunnypost/internal/service"
	"bunnypost/internal/upload"
)

// @title BunnyPost API
// @version 1.0
// @description Social posting API with accounts, posts, comments, likes and JWT authentication.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var imageUploader upload.Uploader
	if cfg.CloudinaryURL != "" {
		cloudinaryUploader, err := upload.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("cloudinary init: %v", err)
		}
		imageUploader = cloudinaryUploader
	} else {
		log.Println("CLOUDINARY_URL not set, profile image uploads disabled")
		imageUploader = upload.Disabled{}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, imageUploader, cacheClient)
	postService := service.NewPostService(postRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, postRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		postHandler,
		commentHandler,
		likeHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
