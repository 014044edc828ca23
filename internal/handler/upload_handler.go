package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kashif-sureify/product-catalog/internal/errors"
	"github.com/kashif-sureify/product-catalog/internal/storage"
)

// UploadHandler handles standalone image uploads.
type UploadHandler struct {
	storage *storage.DiskStorage
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(storage *storage.DiskStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadResponse carries the stored filename of an uploaded image.
type UploadResponse struct {
	Filename string `json:"filename"`
}

// Upload godoc
// @Summary Upload a single image
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "No file uploaded",
			Code:  "NO_FILE",
		})
	}

	filename, err := h.storage.Save(file)
	if err != nil {
		if err == storage.ErrUnsupportedFileType {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "UNSUPPORTED_FILE_TYPE",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadResponse{Filename: filename})
}
