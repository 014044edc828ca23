package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashif-sureify/product-catalog/internal/storage"
)

func newUploadApp(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	h := NewUploadHandler(store)
	e := echo.New()
	e.POST("/api/upload", h.Upload)
	return e
}

func multipartUpload(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_StoresFile(t *testing.T) {
	e := newUploadApp(t)

	body, contentType := multipartUpload(t, "image", "photo.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"filename"`)
	assert.Contains(t, rec.Body.String(), ".jpg")
	// Client filename never leaks into the stored name
	assert.NotContains(t, rec.Body.String(), "photo.jpg")
}

func TestUploadHandler_NoFile(t *testing.T) {
	e := newUploadApp(t)

	body, contentType := multipartUpload(t, "something-else", "photo.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestUploadHandler_RejectsNonImage(t *testing.T) {
	e := newUploadApp(t)

	body, contentType := multipartUpload(t, "image", "script.exe")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}
