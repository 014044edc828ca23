package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kashif-sureify/product-catalog/internal/auth"
	"github.com/kashif-sureify/product-catalog/internal/errors"
	"github.com/kashif-sureify/product-catalog/internal/model"
	"github.com/kashif-sureify/product-catalog/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthResponse represents a successful signup or login response.
type AuthResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

// CheckResponse represents the identity behind a valid session cookie.
type CheckResponse struct {
	Success bool          `json:"success"`
	User    auth.Identity `json:"user"`
}

// MessageResponse is a plain success message envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Signup godoc
// @Summary Sign up a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingFields)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, user, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, AuthResponse{Success: true, User: user})
}

// Login godoc
// @Summary Log in a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingFields)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, AuthResponse{Success: true, User: user})
}

// Logout godoc
// @Summary Log out the current user
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Logout successfully !"})
}

// Check godoc
// @Summary Check authentication status
// @Tags auth
// @Produce json
// @Success 200 {object} CheckResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /v1/auth/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "Unauthorized",
			Code:  "UNAUTHORIZED",
		})
	}
	return c.JSON(http.StatusOK, CheckResponse{Success: true, User: identity})
}

// setSessionCookie attaches the signed token as an HTTP-only cookie whose
// lifetime matches the token expiry.
func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
