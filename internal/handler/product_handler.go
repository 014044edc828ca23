package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/kashif-sureify/product-catalog/internal/errors"
	"github.com/kashif-sureify/product-catalog/internal/model"
	"github.com/kashif-sureify/product-catalog/internal/service"
	"github.com/kashif-sureify/product-catalog/internal/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 6
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	productService service.ProductService
	storage        *storage.DiskStorage
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService, storage *storage.DiskStorage) *ProductHandler {
	return &ProductHandler{productService: productService, storage: storage}
}

// CreateProductRequest represents a create-product request. All fields are
// required; the image may arrive as a filename or as a multipart file part.
type CreateProductRequest struct {
	Name        string           `json:"name" form:"name"`
	Description string           `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price"`
	Stock       *int             `json:"stock" form:"stock"`
	Image       string           `json:"image" form:"image"`
}

// UpdateProductRequest represents a partial update. Omitted fields keep their
// stored values.
type UpdateProductRequest struct {
	Name        *string          `json:"name" form:"name"`
	Description *string          `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price"`
	Stock       *int             `json:"stock" form:"stock"`
	Image       *string          `json:"image" form:"image"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Success bool           `json:"success"`
	Data    *model.Product `json:"data"`
}

// ProductListResponse wraps a product page.
type ProductListResponse struct {
	Success       bool            `json:"success"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
	TotalProducts int64           `json:"totalProducts"`
	TotalPages    int64           `json:"totalPages"`
	Data          []model.Product `json:"data"`
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} ProductListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	products, err := h.productService.List(c.Request().Context(), limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	total, err := h.productService.Count(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return c.JSON(http.StatusOK, ProductListResponse{
		Success:       true,
		Page:          page,
		Limit:         limit,
		TotalProducts: total,
		TotalPages:    totalPages,
		Data:          products,
	})
}

// Get godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return productNotFound()
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if product == nil {
		return productNotFound()
	}

	return c.JSON(http.StatusOK, ProductResponse{Success: true, Data: product})
}

// Create godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	filename, err := h.saveUploadedImage(c)
	if err != nil {
		return err
	}
	if filename != "" {
		req.Image = filename
	}

	if req.Name == "" || req.Description == "" || req.Price == nil || req.Stock == nil || req.Image == "" {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingFields)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if req.Price.IsNegative() || *req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "price and stock must be non-negative",
			Code:  "INVALID_FIELDS",
		})
	}

	image := req.Image
	product, err := h.productService.Create(c.Request().Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Image:       &image,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ProductResponse{Success: true, Data: product})
}

// Update godoc
// @Summary Partially update a product
// @Tags products
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path int true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return productNotFound()
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	filename, err := h.saveUploadedImage(c)
	if err != nil {
		return err
	}
	if filename != "" {
		req.Image = &filename
	}

	if req.Price != nil && req.Price.IsNegative() || req.Stock != nil && *req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "price and stock must be non-negative",
			Code:  "INVALID_FIELDS",
		})
	}

	product, err := h.productService.Update(c.Request().Context(), id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if product == nil {
		return productNotFound()
	}

	return c.JSON(http.StatusOK, ProductResponse{Success: true, Data: product})
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return productNotFound()
	}

	deleted, err := h.productService.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !deleted {
		return productNotFound()
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Product deleted successfully"})
}

// saveUploadedImage stores an attached multipart image part, when present,
// and returns its generated filename. JSON requests have no file part and
// fall through with an empty name.
func (h *ProductHandler) saveUploadedImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	filename, err := h.storage.Save(file)
	if err != nil {
		if err == storage.ErrUnsupportedFileType {
			return "", echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "UNSUPPORTED_FILE_TYPE",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return "", echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return filename, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func productNotFound() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrProductNotFound)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
