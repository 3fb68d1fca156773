package migrations

import (
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_categories_table", &CreateCategoriesTable{})
	migration.Register("20260301000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000002_create_inventories_table", &CreateInventoriesTable{})
}

// -------- 0001: categories --------

type CreateCategoriesTable struct{}

func (m *CreateCategoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *CreateCategoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("categories")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: inventories --------

type CreateInventoriesTable struct{}

func (m *CreateInventoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Inventory{})
}

func (m *CreateInventoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("inventories")
}
