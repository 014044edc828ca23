package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product. Image is nullable: it references a
// file stored by the upload collaborator, not binary data. CreatedAt is set
// once at insert time; products carry no updated_at column.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null"`
	Image       *string         `json:"image" gorm:"size:255"`
	CreatedAt   time.Time       `json:"created_at"`
}
