package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/audit"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"gorm.io/gorm"
)

// lowStockCacheKey caches the low-stock listing; invalidated on every
// inventory mutation.
const lowStockCacheKey = "inventory:low-stock"

const lowStockCacheTTL = 15 * time.Second

// InventoryService owns the stock-level semantics: every mutation leaves
// stockLevel >= 0 and the one-to-one product↔inventory binding intact.
//
// The stock mutations delegate to single conditional UPDATEs in the
// repository, so the invariant holds under concurrent requests without any
// in-process locking.
type InventoryService struct {
	inventories *repositories.InventoryRepository
	products    *repositories.ProductRepository
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		inventories: repositories.NewInventoryRepository(db),
		products:    repositories.NewProductRepository(db),
	}
}

// All returns every inventory record.
func (s *InventoryService) All() ([]models.Inventory, error) {
	return s.inventories.All()
}

// GetByID returns (record, true) or (zero, false) on a read miss.
func (s *InventoryService) GetByID(id uint) (models.Inventory, bool, error) {
	return s.inventories.FindByID(id)
}

// GetByProductID returns the record bound to a product, if any.
func (s *InventoryService) GetByProductID(productID uint) (models.Inventory, bool, error) {
	return s.inventories.FindByProductID(productID)
}

// Create binds a new inventory record to a product. The product must exist
// and must not already have a record.
func (s *InventoryService) Create(ctx context.Context, productID uint, record models.Inventory) (models.Inventory, error) {
	product, found, err := s.products.FindByID(productID)
	if err != nil {
		return models.Inventory{}, err
	}
	if !found {
		return models.Inventory{}, notFoundf("Product not found with id: %d", productID)
	}

	if _, exists, err := s.inventories.FindByProductID(productID); err != nil {
		return models.Inventory{}, err
	} else if exists {
		return models.Inventory{}, conflictf("Inventory already exists for product with id: %d", productID)
	}

	record.ID = 0
	record.ProductID = productID
	record.Product = product
	record.LastUpdated = time.Now()

	if err := s.inventories.Create(&record); err != nil {
		return models.Inventory{}, err
	}

	s.invalidate()
	audit.Record(ctx, audit.Movement{
		InventoryID: record.ID,
		ProductID:   productID,
		Op:          "create",
		Quantity:    record.StockLevel,
		StockLevel:  record.StockLevel,
	})
	return record, nil
}

// Update overwrites stockLevel, location and reorderLevel verbatim and
// re-stamps lastUpdated.
func (s *InventoryService) Update(ctx context.Context, id uint, details models.Inventory) (models.Inventory, error) {
	record, found, err := s.inventories.FindByID(id)
	if err != nil {
		return models.Inventory{}, err
	}
	if !found {
		return models.Inventory{}, notFoundf("Inventory not found with id: %d", id)
	}

	record.StockLevel = details.StockLevel
	record.Location = details.Location
	record.ReorderLevel = details.ReorderLevel
	record.LastUpdated = time.Now()

	if err := s.inventories.Save(&record); err != nil {
		return models.Inventory{}, err
	}

	s.invalidate()
	audit.Record(ctx, audit.Movement{
		InventoryID: record.ID,
		ProductID:   record.ProductID,
		Op:          "update",
		Quantity:    record.StockLevel,
		StockLevel:  record.StockLevel,
	})
	return record, nil
}

// SetStockLevel overwrites the stock level of a record. Guard order:
// negative input first (ValidationError), then existence (NotFoundError).
func (s *InventoryService) SetStockLevel(ctx context.Context, id uint, newLevel int) (models.Inventory, error) {
	if newLevel < 0 {
		metrics.RecordStockMutation("set", false)
		return models.Inventory{}, validationf("Stock level cannot be negative")
	}

	ok, err := s.inventories.SetStock(id, newLevel)
	if err != nil {
		return models.Inventory{}, err
	}
	if !ok {
		metrics.RecordStockMutation("set", false)
		return models.Inventory{}, notFoundf("Inventory not found with id: %d", id)
	}

	return s.afterMutation(ctx, id, "set", newLevel)
}

// SetStockLevelByProductID resolves the record through its product
// reference, then applies the same guards as SetStockLevel.
func (s *InventoryService) SetStockLevelByProductID(ctx context.Context, productID uint, newLevel int) (models.Inventory, error) {
	if newLevel < 0 {
		metrics.RecordStockMutation("set", false)
		return models.Inventory{}, validationf("Stock level cannot be negative")
	}

	record, found, err := s.inventories.FindByProductID(productID)
	if err != nil {
		return models.Inventory{}, err
	}
	if !found {
		metrics.RecordStockMutation("set", false)
		return models.Inventory{}, notFoundf("Inventory not found for product with id: %d", productID)
	}

	if _, err := s.inventories.SetStock(record.ID, newLevel); err != nil {
		return models.Inventory{}, err
	}

	return s.afterMutation(ctx, record.ID, "set", newLevel)
}

// AddStock increments the stock level; no upper bound.
func (s *InventoryService) AddStock(ctx context.Context, id uint, quantity int) (models.Inventory, error) {
	if quantity < 0 {
		metrics.RecordStockMutation("add", false)
		return models.Inventory{}, validationf("Quantity to add cannot be negative")
	}

	ok, err := s.inventories.AddStock(id, quantity)
	if err != nil {
		return models.Inventory{}, err
	}
	if !ok {
		metrics.RecordStockMutation("add", false)
		return models.Inventory{}, notFoundf("Inventory not found with id: %d", id)
	}

	return s.afterMutation(ctx, id, "add", quantity)
}

// RemoveStock decrements the stock level. The decrement is one conditional
// UPDATE guarded by stock_level >= quantity; when it affects no row, a
// follow-up lookup decides between "record missing" and "insufficient
// stock", and the record is left unchanged either way.
func (s *InventoryService) RemoveStock(ctx context.Context, id uint, quantity int) (models.Inventory, error) {
	if quantity < 0 {
		metrics.RecordStockMutation("remove", false)
		return models.Inventory{}, validationf("Quantity to remove cannot be negative")
	}

	ok, err := s.inventories.RemoveStock(id, quantity)
	if err != nil {
		return models.Inventory{}, err
	}
	if !ok {
		metrics.RecordStockMutation("remove", false)

		record, found, err := s.inventories.FindByID(id)
		if err != nil {
			return models.Inventory{}, err
		}
		if !found {
			return models.Inventory{}, notFoundf("Inventory not found with id: %d", id)
		}
		return models.Inventory{}, conflictf("Insufficient stock. Available: %d, Requested: %d", record.StockLevel, quantity)
	}

	return s.afterMutation(ctx, id, "remove", quantity)
}

// Delete removes an inventory record.
func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	record, found, err := s.inventories.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return notFoundf("Inventory not found with id: %d", id)
	}

	if err := s.inventories.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	audit.Record(ctx, audit.Movement{
		InventoryID: id,
		ProductID:   record.ProductID,
		Op:          "delete",
		StockLevel:  record.StockLevel,
	})
	return nil
}

// LowStock returns every record with stockLevel <= reorderLevel (inclusive),
// read through the cache.
func (s *InventoryService) LowStock() ([]models.Inventory, error) {
	var records []models.Inventory
	if cache.Get(lowStockCacheKey, &records) {
		return records, nil
	}

	records, err := s.inventories.LowStock()
	if err != nil {
		return nil, err
	}

	_ = cache.Set(lowStockCacheKey, records, lowStockCacheTTL)
	return records, nil
}

// BelowStockLevel returns every record with stockLevel < threshold (strict).
func (s *InventoryService) BelowStockLevel(threshold int) ([]models.Inventory, error) {
	return s.inventories.BelowStockLevel(threshold)
}

// ByLocation returns records with an exact location match.
func (s *InventoryService) ByLocation(location string) ([]models.Inventory, error) {
	return s.inventories.ByLocation(location)
}

// afterMutation reloads the mutated record, bumps metrics, records the audit
// movement and drops the low-stock cache.
func (s *InventoryService) afterMutation(ctx context.Context, id uint, op string, quantity int) (models.Inventory, error) {
	record, _, err := s.inventories.FindByID(id)
	if err != nil {
		return models.Inventory{}, err
	}

	metrics.RecordStockMutation(op, true)
	s.invalidate()
	audit.Record(ctx, audit.Movement{
		InventoryID: record.ID,
		ProductID:   record.ProductID,
		Op:          op,
		Quantity:    quantity,
		StockLevel:  record.StockLevel,
	})
	return record, nil
}

func (s *InventoryService) invalidate() {
	_ = cache.Del(lowStockCacheKey)
}
