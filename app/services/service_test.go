package services_test

import (
	"testing"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Inventory{}))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category, err := services.NewCategoryService(db).Create(models.Category{Name: name})
	require.NoError(t, err)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, name, sku string, price float64, categoryID uint) models.Product {
	t.Helper()

	product, err := services.NewProductService(db).Create(models.Product{
		Name:       name,
		SKU:        sku,
		Price:      price,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return product
}
