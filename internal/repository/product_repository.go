package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kashif-sureify/product-catalog/internal/model"
)

// ProductRepository defines product store operations. Write operations report
// affected rows so callers can distinguish "no such row" from failure.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, limit, offset int) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products newest first, sliced by limit/offset.
func (r *productRepository) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// UpdateFields applies only the given columns to the matched row. Fields left
// out of the map keep their stored values, which gives the partial-update
// semantics of the PATCH endpoint.
func (r *productRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	return tx.RowsAffected, tx.Error
}
