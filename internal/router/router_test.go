package router

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashif-sureify/product-catalog/internal/config"
	"github.com/kashif-sureify/product-catalog/internal/handler"
	"github.com/kashif-sureify/product-catalog/internal/storage"
)

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		UploadDir:    store.Dir(),
		ClientOrigin: "http://localhost:5173",
	}

	e := echo.New()
	Register(e, cfg,
		handler.NewAuthHandler(nil),
		handler.NewProductHandler(nil, store),
		handler.NewUploadHandler(store),
	)
	return e
}

func TestRouter_UploadAcceptsLargeImages(t *testing.T) {
	e := newTestApp(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "camera.jpg")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 2<<20))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"filename"`)
}

func TestRouter_AuthRejectsOversizedBodies(t *testing.T) {
	e := newTestApp(t)

	body := bytes.Repeat([]byte("a"), 2<<20)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	e := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
