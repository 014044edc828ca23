package auth

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/kashif-sureify/product-catalog/internal/errors"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// Identity is the decoded token identity attached to protected requests.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// SessionMiddleware gates protected routes. It reads the token from the
// session cookie, verifies signature and expiry, and rejects with a generic
// 401 before the handler runs. Verification is stateless: there is no
// server-side session or revocation store.
func SessionMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Unauthorized",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// IdentityFromContext extracts the token identity stored by the session
// middleware. The bool result is false when the route was not protected or
// the claims are malformed.
func IdentityFromContext(c echo.Context) (Identity, bool) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return Identity{}, false
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return Identity{}, false
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, false
	}
	email, ok := claims["email"].(string)
	if !ok {
		return Identity{}, false
	}

	return Identity{ID: uint(id), Email: email}, true
}
