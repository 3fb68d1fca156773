package seeders

import (
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts a small demo catalogue: three categories, a handful of
// products and a stocked inventory row per product. Idempotent: skips when
// categories already exist.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "T-Shirts", Description: "Short-sleeved casual tops"},
		{Name: "Jeans", Description: "Denim trousers"},
		{Name: "Jackets", Description: "Outerwear"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Classic Tee", Price: 19.99, SKU: "TSH-001", Size: "M", Color: "White", CategoryID: categories[0].ID},
		{Name: "Graphic Tee", Price: 24.99, SKU: "TSH-002", Size: "L", Color: "Black", CategoryID: categories[0].ID},
		{Name: "Slim Fit Jeans", Price: 59.99, SKU: "JNS-001", Size: "32", Color: "Blue", CategoryID: categories[1].ID},
		{Name: "Denim Jacket", Price: 89.99, SKU: "JKT-001", Size: "M", Color: "Blue", CategoryID: categories[2].ID},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	now := time.Now()
	inventories := make([]models.Inventory, 0, len(products))
	for i, p := range products {
		inventories = append(inventories, models.Inventory{
			ProductID:    p.ID,
			StockLevel:   25 * (i + 1),
			Location:     "warehouse-a",
			ReorderLevel: 10,
			LastUpdated:  now,
		})
	}
	return db.Create(&inventories).Error
}
