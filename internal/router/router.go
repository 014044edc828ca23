package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/kashif-sureify/product-catalog/internal/auth"
	"github.com/kashif-sureify/product-catalog/internal/config"
	"github.com/kashif-sureify/product-catalog/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	session := auth.SessionMiddleware(cfg.JWTSecret)

	// JSON bodies are small; routes that accept an image file part get a
	// larger allowance.
	jsonLimit := middleware.BodyLimit("1M")
	imageLimit := middleware.BodyLimit("10M")

	api := e.Group("/api")

	// Stored images are served straight from the upload dir
	e.Static("/api/uploads", cfg.UploadDir)

	// Auth routes
	authGroup := api.Group("/v1/auth", jsonLimit)
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/check", authHandler.Check, session)

	// Product routes: reads are public, writes need a session
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, session, imageLimit)
	products.PATCH("/:id", productHandler.Update, session, imageLimit)
	products.DELETE("/:id", productHandler.Delete, session, jsonLimit)

	// Upload routes
	api.POST("/upload", uploadHandler.Upload, imageLimit)
	api.PATCH("/upload", uploadHandler.Upload, imageLimit)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
