package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kashif-sureify/product-catalog/internal/config"
	"github.com/kashif-sureify/product-catalog/internal/db"
	"github.com/kashif-sureify/product-catalog/internal/model"
	"github.com/kashif-sureify/product-catalog/internal/repository"
)

// demoProducts is the baseline catalog inserted by the seed tool. Seeding is
// keyed by name so the tool is safe to run on every start.
var demoProducts = []model.Product{
	{Name: "Mechanical Keyboard", Description: "Tenkeyless board with hot-swappable switches.", Price: decimal.NewFromFloat(89.99), Stock: 12, Image: strPtr("keyboard.jpg")},
	{Name: "Wireless Mouse", Description: "Ergonomic 2.4GHz mouse with adjustable DPI.", Price: decimal.NewFromFloat(24.50), Stock: 30, Image: strPtr("mouse.jpg")},
	{Name: "USB-C Hub", Description: "7-in-1 hub with HDMI, card reader and PD pass-through.", Price: decimal.NewFromFloat(39.00), Stock: 18, Image: strPtr("hub.jpg")},
	{Name: "27\" Monitor", Description: "QHD IPS panel, 75Hz, thin bezels.", Price: decimal.NewFromFloat(229.00), Stock: 7, Image: strPtr("monitor.jpg")},
	{Name: "Desk Lamp", Description: "Adjustable LED lamp with three color temperatures.", Price: decimal.NewFromFloat(19.99), Stock: 42, Image: nil},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	productRepo := repository.NewProductRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding products into database...")
	seeded, updated, err := seedProducts(ctx, gormDB, productRepo, demoProducts)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New products created: %d", seeded)
	log.Printf("  - Existing products updated: %d", updated)
	log.Printf("  - Total products processed: %d", seeded+updated)
}

// seedProducts creates each demo product or refreshes an existing row with
// the same name.
func seedProducts(ctx context.Context, gormDB *gorm.DB, repo repository.ProductRepository, products []model.Product) (seeded int, updated int, err error) {
	for _, product := range products {
		var existing model.Product
		err := gormDB.WithContext(ctx).Where("name = ?", product.Name).First(&existing).Error
		switch {
		case err == nil:
			fields := map[string]interface{}{
				"description": product.Description,
				"price":       product.Price,
				"stock":       product.Stock,
			}
			if _, err := repo.UpdateFields(ctx, existing.ID, fields); err != nil {
				return seeded, updated, err
			}
			updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.Create(ctx, &product); err != nil {
				return seeded, updated, err
			}
			seeded++
		default:
			return seeded, updated, err
		}
	}

	return seeded, updated, nil
}

func strPtr(s string) *string {
	return &s
}
