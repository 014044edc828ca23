package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(secret string) *echo.Echo {
	e := echo.New()
	protected := e.Group("", SessionMiddleware(secret))
	protected.GET("/check", func(c echo.Context) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}
		return c.JSON(http.StatusOK, identity)
	})
	return e
}

func doCheck(e *echo.Echo, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	e := newProtectedApp("test-secret")

	rec := doCheck(e, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	e := newProtectedApp("test-secret")

	token, err := NewJWTService("test-secret").GenerateToken(42, "test@example.com")
	require.NoError(t, err)

	rec := doCheck(e, &http.Cookie{Name: CookieName, Value: token})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"email":"test@example.com"`)
}

func TestSessionMiddleware_WrongKey(t *testing.T) {
	e := newProtectedApp("test-secret")

	token, err := NewJWTService("other-secret").GenerateToken(42, "test@example.com")
	require.NoError(t, err)

	rec := doCheck(e, &http.Cookie{Name: CookieName, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_ExpiredToken(t *testing.T) {
	e := newProtectedApp("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	rec := doCheck(e, &http.Cookie{Name: CookieName, Value: tokenString})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_MalformedToken(t *testing.T) {
	e := newProtectedApp("test-secret")

	rec := doCheck(e, &http.Cookie{Name: CookieName, Value: "garbage"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
