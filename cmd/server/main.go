package main

import (
	"log"
	"net/http"

	_ "taskdeck/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskdeck/internal/auth"
	"taskdeck/internal/cache"
	"taskdeck/internal/config"
	"taskdeck/internal/db"
	"taskdeck/internal/handler"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
	"taskdeck/internal/router"
	"taskdeck/internal/service"
)

// @title Taskdeck API
// @version 1.0
// @description Task tracking API with per-user task ownership and JWT authentication.
// @host localhost:5000
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
	// Verbose error payloads (including stack detail) outside production.
	e.Debug = !cfg.IsProduction()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	// Register routes
	router.Register(
		e,
		cfg,
		userService,
		authHandler,
		userHandler,
		taskHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Server running in %s mode on port %s", cfg.Env, cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
