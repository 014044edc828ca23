package main

import (
	"log"
	"net/http"

	_ "github.com/kashif-sureify/product-catalog/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kashif-sureify/product-catalog/internal/auth"
	"github.com/kashif-sureify/product-catalog/internal/config"
	"github.com/kashif-sureify/product-catalog/internal/db"
	"github.com/kashif-sureify/product-catalog/internal/handler"
	"github.com/kashif-sureify/product-catalog/internal/model"
	"github.com/kashif-sureify/product-catalog/internal/repository"
	"github.com/kashif-sureify/product-catalog/internal/router"
	"github.com/kashif-sureify/product-catalog/internal/service"
	"github.com/kashif-sureify/product-catalog/internal/storage"
)

// @title Product Catalog API
// @version 1.0
// @description Product catalog API with session-cookie authentication, product CRUD, and image upload.
// @host localhost:3000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Create tables idempotently at startup
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	imageStore, err := storage.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload storage init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	productService := service.NewProductService(productRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, imageStore)
	uploadHandler := handler.NewUploadHandler(imageStore)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		uploadHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
