package repositories

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"gorm.io/gorm"
)

// InventoryRepository handles database operations for Inventory.
//
// The stock mutations (AddStock, RemoveStock, SetStock) are single UPDATE
// statements so the read and the write of stock_level form one atomic unit
// per row; two concurrent removals can never drive the level negative.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// All returns every inventory record with its product and category.
func (r *InventoryRepository) All() ([]models.Inventory, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var records []models.Inventory
	err := r.db.Preload("Product.Category").Find(&records).Error
	return records, err
}

// FindByID looks up a record by primary key; a miss is (zero, false, nil).
func (r *InventoryRepository) FindByID(id uint) (models.Inventory, bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var record models.Inventory
	err := r.db.Preload("Product.Category").First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Inventory{}, false, nil
	}
	return record, err == nil, err
}

// FindByProductID looks up the record bound to a product.
func (r *InventoryRepository) FindByProductID(productID uint) (models.Inventory, bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var record models.Inventory
	err := r.db.Preload("Product.Category").
		Where("product_id = ?", productID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Inventory{}, false, nil
	}
	return record, err == nil, err
}

// Create persists a new inventory record.
func (r *InventoryRepository) Create(record *models.Inventory) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(record).Error
}

// Save persists changes to an existing record.
func (r *InventoryRepository) Save(record *models.Inventory) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(record).Error
}

// Delete removes an inventory row by id.
func (r *InventoryRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Inventory{}, id).Error
}

// DeleteByProductID removes the inventory row bound to a product, if any.
func (r *InventoryRepository) DeleteByProductID(productID uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Where("product_id = ?", productID).Delete(&models.Inventory{}).Error
}

// SetStock overwrites stock_level and re-stamps last_updated in one UPDATE.
// Returns false when no row with that id exists.
func (r *InventoryRepository) SetStock(id uint, level int) (bool, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Inventory{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_level":  level,
			"last_updated": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

// AddStock increments stock_level by quantity in one UPDATE.
// Returns false when no row with that id exists.
func (r *InventoryRepository) AddStock(id uint, quantity int) (bool, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Inventory{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_level":  gorm.Expr("stock_level + ?", quantity),
			"last_updated": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

// RemoveStock decrements stock_level by quantity, but only when the current
// level covers it: the WHERE clause guards `stock_level >= quantity`, so the
// non-negative invariant holds even under concurrent callers. Returns false
// when the row is missing OR the stock is insufficient; the caller
// disambiguates with a follow-up lookup.
func (r *InventoryRepository) RemoveStock(id uint, quantity int) (bool, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Inventory{}).
		Where("id = ? AND stock_level >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock_level":  gorm.Expr("stock_level - ?", quantity),
			"last_updated": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

// LowStock returns every record at or below its own reorder threshold
// (inclusive: stock_level == reorder_level counts as low).
func (r *InventoryRepository) LowStock() ([]models.Inventory, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var records []models.Inventory
	err := r.db.Preload("Product.Category").
		Where("stock_level <= reorder_level").
		Find(&records).Error
	return records, err
}

// BelowStockLevel returns every record strictly below the given threshold.
// Distinct semantics from LowStock: the bound is exclusive and global.
func (r *InventoryRepository) BelowStockLevel(threshold int) ([]models.Inventory, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var records []models.Inventory
	err := r.db.Preload("Product.Category").
		Where("stock_level < ?", threshold).
		Find(&records).Error
	return records, err
}

// ByLocation returns records with an exact location match.
func (r *InventoryRepository) ByLocation(location string) ([]models.Inventory, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var records []models.Inventory
	err := r.db.Preload("Product.Category").
		Where("location = ?", location).
		Find(&records).Error
	return records, err
}
