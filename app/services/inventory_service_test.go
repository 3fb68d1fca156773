package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInventory(t *testing.T, db *gorm.DB, stockLevel, reorderLevel int) (models.Inventory, *services.InventoryService) {
	t.Helper()

	category := seedCategory(t, db, "T-Shirts")
	product := seedProduct(t, db, "Classic Tee", "TSH-001", 19.99, category.ID)

	svc := services.NewInventoryService(db)
	record, err := svc.Create(context.Background(), product.ID, models.Inventory{
		StockLevel:   stockLevel,
		Location:     "warehouse-a",
		ReorderLevel: reorderLevel,
	})
	require.NoError(t, err)
	return record, svc
}

func TestCreateInventoryUnknownProduct(t *testing.T) {
	svc := services.NewInventoryService(testDB(t))

	_, err := svc.Create(context.Background(), 42, models.Inventory{StockLevel: 5})

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Product not found with id: 42", notFound.Message)
}

func TestCreateInventoryDuplicate(t *testing.T) {
	db := testDB(t)
	record, svc := seedInventory(t, db, 5, 10)

	_, err := svc.Create(context.Background(), record.ProductID, models.Inventory{StockLevel: 1})

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCreateInventoryStampsLastUpdated(t *testing.T) {
	record, _ := seedInventory(t, testDB(t), 5, 10)
	assert.False(t, record.LastUpdated.IsZero())
}

func TestSetStockNegativeBeforeExistence(t *testing.T) {
	// The negative-input guard fires even when the record does not exist.
	svc := services.NewInventoryService(testDB(t))

	_, err := svc.SetStockLevel(context.Background(), 999, -1)

	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Stock level cannot be negative", validation.Message)
}

func TestSetStockUnknownID(t *testing.T) {
	svc := services.NewInventoryService(testDB(t))

	_, err := svc.SetStockLevel(context.Background(), 999, 3)

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSetStockByProductID(t *testing.T) {
	db := testDB(t)
	record, svc := seedInventory(t, db, 5, 10)

	updated, err := svc.SetStockLevelByProductID(context.Background(), record.ProductID, 17)
	require.NoError(t, err)
	assert.Equal(t, 17, updated.StockLevel)

	_, err = svc.SetStockLevelByProductID(context.Background(), record.ProductID+1, 17)
	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Inventory not found for product with id: 2", notFound.Message)
}

func TestAddStockNegative(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 5, 10)

	_, err := svc.AddStock(context.Background(), record.ID, -3)

	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Quantity to add cannot be negative", validation.Message)
}

func TestAddThenRemoveIsInverse(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 8, 10)
	ctx := context.Background()

	after, err := svc.AddStock(ctx, record.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 15, after.StockLevel)

	after, err = svc.RemoveStock(ctx, record.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 8, after.StockLevel)
}

func TestRemoveStockInsufficient(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 25, 10)

	_, err := svc.RemoveStock(context.Background(), record.ID, 30)

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Insufficient stock. Available: 25, Requested: 30", conflict.Message)

	// The failed removal must leave the level untouched.
	current, found, err := svc.GetByID(record.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 25, current.StockLevel)
}

func TestRemoveStockUnknownID(t *testing.T) {
	svc := services.NewInventoryService(testDB(t))

	_, err := svc.RemoveStock(context.Background(), 999, 1)

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Inventory not found with id: 999", notFound.Message)
}

func TestRemoveStockToZero(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 4, 10)

	after, err := svc.RemoveStock(context.Background(), record.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, after.StockLevel)
}

func TestMutationRestampsLastUpdated(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 5, 10)

	time.Sleep(10 * time.Millisecond)
	after, err := svc.AddStock(context.Background(), record.ID, 1)
	require.NoError(t, err)
	assert.True(t, after.LastUpdated.After(record.LastUpdated))
}

func TestLowStockInclusiveBelowStrict(t *testing.T) {
	// stockLevel == reorderLevel counts as low, but "below N" is strict:
	// the same record must show up in exactly one of the two listings.
	record, svc := seedInventory(t, testDB(t), 5, 5)

	low, err := svc.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, record.ID, low[0].ID)

	below, err := svc.BelowStockLevel(5)
	require.NoError(t, err)
	assert.Empty(t, below)

	below, err = svc.BelowStockLevel(6)
	require.NoError(t, err)
	assert.Len(t, below, 1)
}

func TestStockLifecycle(t *testing.T) {
	// Stock at 5 with reorder point 10 is low; topping it up to 25 clears
	// the listing; over-removal fails and leaves 25 behind.
	record, svc := seedInventory(t, testDB(t), 5, 10)
	ctx := context.Background()

	low, err := svc.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)

	after, err := svc.AddStock(ctx, record.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 25, after.StockLevel)

	low, err = svc.LowStock()
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = svc.RemoveStock(ctx, record.ID, 30)
	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)

	current, _, err := svc.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, current.StockLevel)
}

func TestUpdateOverwritesFields(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 5, 10)

	updated, err := svc.Update(context.Background(), record.ID, models.Inventory{
		StockLevel:   12,
		Location:     "warehouse-b",
		ReorderLevel: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.StockLevel)
	assert.Equal(t, "warehouse-b", updated.Location)
	assert.Equal(t, 3, updated.ReorderLevel)
}

func TestByLocationExactMatch(t *testing.T) {
	_, svc := seedInventory(t, testDB(t), 5, 10)

	records, err := svc.ByLocation("warehouse-a")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = svc.ByLocation("warehouse")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteInventory(t *testing.T) {
	record, svc := seedInventory(t, testDB(t), 5, 10)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, record.ID))

	_, found, err := svc.GetByID(record.ID)
	require.NoError(t, err)
	assert.False(t, found)

	err = svc.Delete(ctx, record.ID)
	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetByProductIDMissIsData(t *testing.T) {
	svc := services.NewInventoryService(testDB(t))

	_, found, err := svc.GetByProductID(123)
	require.NoError(t, err)
	assert.False(t, found)
}
