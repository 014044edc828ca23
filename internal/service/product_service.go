package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kashif-sureify/product-catalog/internal/model"
	"github.com/kashif-sureify/product-catalog/internal/repository"
)

// CreateProductInput carries the fields of a new product. Image stays nil
// when the request supplied none.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Image       *string
}

// UpdateProductInput carries a partial update. Nil fields keep their stored
// values.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Image       *string
}

// ProductService exposes product catalog operations. Absence is reported as a
// nil product (Get, Update) or false (Delete), never as an error; store
// failures surface wrapped with the failing operation's name.
type ProductService interface {
	List(ctx context.Context, limit, offset int) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*model.Product, error)
	Update(ctx context.Context, id uint, input UpdateProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type productService struct {
	products repository.ProductRepository
}

// NewProductService builds a ProductService over the product store.
func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	products, err := s.products.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *productService) Count(ctx context.Context) (int64, error) {
	total, err := s.products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Create inserts the row and re-reads it so the returned product reflects
// created_at and any other store-computed defaults. A write that yields no
// generated id is a hard failure: the caller has no other way to know the
// row exists.
func (s *productService) Create(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if product.ID == 0 {
		return nil, fmt.Errorf("create product: no generated id")
	}

	stored, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return stored, nil
}

// Update applies only the supplied fields. An empty partial touches nothing
// and returns the current row. An absent row yields a nil product.
func (s *productService) Update(ctx context.Context, id uint, input UpdateProductInput) (*model.Product, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	if len(fields) == 0 {
		product, err := s.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update product: %w", err)
		}
		return product, nil
	}

	rows, err := s.products.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if rows == 0 {
		// The mysql driver reports changed rows, not matched rows, so a
		// partial that re-sends stored values looks like a miss. Re-read to
		// tell an absent row from a matched-but-unchanged one.
		product, err := s.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update product: %w", err)
		}
		return product, nil
	}

	stored, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return stored, nil
}

// Delete is unconditional; the second delete of the same id reports false.
func (s *productService) Delete(ctx context.Context, id uint) (bool, error) {
	rows, err := s.products.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return rows > 0, nil
}
