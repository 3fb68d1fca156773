package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Inventory{}))

	r := router.New()
	routes.Register(r, db)
	return r.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, rec, &body)
	return body["message"]
}

// createFixtures posts one category, one product and one inventory record
// and returns their ids.
func createFixtures(t *testing.T, h http.Handler, stockLevel int) (categoryID, productID, inventoryID uint) {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/categories", map[string]string{"name": "T-Shirts"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var category models.Category
	decode(t, rec, &category)

	rec = do(t, h, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Classic Tee",
		"price":    19.99,
		"sku":      "TSH-001",
		"category": map[string]uint{"id": category.ID},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var product models.Product
	decode(t, rec, &product)

	rec = do(t, h, http.MethodPost, fmt.Sprintf("/api/inventory/product/%d", product.ID), map[string]interface{}{
		"stockLevel": stockLevel,
		"location":   "warehouse-a",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var record models.Inventory
	decode(t, rec, &record)

	return category.ID, product.ID, record.ID
}

func TestCategoryCRUD(t *testing.T) {
	h := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/categories", map[string]string{"name": "Jeans", "description": "Denim"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var category models.Category
	decode(t, rec, &category)
	assert.Equal(t, "Jeans", category.Name)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/categories/%d", category.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID), map[string]string{"name": "Denim"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPointLookupMissReturnsEmpty200(t *testing.T) {
	h := newAPI(t)

	for _, path := range []string{
		"/api/categories/99",
		"/api/products/99",
		"/api/products/sku/NOPE",
		"/api/inventory/99",
		"/api/inventory/product/99",
	} {
		rec := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, rec.Body.Bytes(), path)
	}
}

func TestProductResponseNestsCategory(t *testing.T) {
	h := newAPI(t)
	_, productID, _ := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/api/products/%d", productID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decode(t, rec, &body)
	category, ok := body["category"].(map[string]interface{})
	require.True(t, ok, "expected nested category object")
	assert.Equal(t, "T-Shirts", category["name"])
}

func TestCreateProductUnknownCategoryIs404(t *testing.T) {
	h := newAPI(t)

	rec := do(t, h, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Classic Tee",
		"price":    19.99,
		"category": map[string]uint{"id": 42},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found with id: 42", message(t, rec))
}

func TestInventoryDefaultsReorderLevel(t *testing.T) {
	h := newAPI(t)
	_, _, inventoryID := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/api/inventory/%d", inventoryID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var record models.Inventory
	decode(t, rec, &record)
	assert.Equal(t, 10, record.ReorderLevel)
}

func TestRemoveStockInsufficientIs400(t *testing.T) {
	h := newAPI(t)
	_, _, inventoryID := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodPost, fmt.Sprintf("/api/inventory/%d/remove-stock", inventoryID), map[string]int{"quantity": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Insufficient stock. Available: 5, Requested: 9", message(t, rec))

	// Level unchanged after the failed removal.
	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/inventory/%d", inventoryID), nil)
	var record models.Inventory
	decode(t, rec, &record)
	assert.Equal(t, 5, record.StockLevel)
}

func TestStockBodiesRequireTheirField(t *testing.T) {
	h := newAPI(t)
	_, _, inventoryID := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodPut, fmt.Sprintf("/api/inventory/%d/stock", inventoryID), map[string]int{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, fmt.Sprintf("/api/inventory/%d/add-stock", inventoryID), map[string]int{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStockNegativeIs400(t *testing.T) {
	h := newAPI(t)
	_, _, inventoryID := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodPut, fmt.Sprintf("/api/inventory/%d/stock", inventoryID), map[string]int{"stockLevel": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Stock level cannot be negative", message(t, rec))
}

func TestAddStockFlow(t *testing.T) {
	h := newAPI(t)
	_, _, inventoryID := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodPost, fmt.Sprintf("/api/inventory/%d/add-stock", inventoryID), map[string]int{"quantity": 20})
	require.Equal(t, http.StatusOK, rec.Code)

	var record models.Inventory
	decode(t, rec, &record)
	assert.Equal(t, 25, record.StockLevel)
}

func TestLowStockListing(t *testing.T) {
	h := newAPI(t)
	createFixtures(t, h, 5) // reorder level defaults to 10, so 5 is low

	rec := do(t, h, http.MethodGet, "/api/inventory/low-stock", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.Inventory
	decode(t, rec, &records)
	assert.Len(t, records, 1)
}

func TestDeleteCategoryInUseIs400(t *testing.T) {
	h := newAPI(t)
	categoryID, _, _ := createFixtures(t, h, 5)

	rec := do(t, h, http.MethodDelete, fmt.Sprintf("/api/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidIDSegmentIs400(t *testing.T) {
	h := newAPI(t)

	rec := do(t, h, http.MethodGet, "/api/categories/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedJSONIs400(t *testing.T) {
	h := newAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	h := newAPI(t)

	rec := do(t, h, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductSearchEndpoints(t *testing.T) {
	h := newAPI(t)
	_, _, _ = createFixtures(t, h, 5)

	for _, path := range []string{
		"/api/products/search?name=tee&minPrice=10",
		"/api/products/search/name?name=classic",
		"/api/products/category/1",
		"/api/products/category/name/T-Shirts",
		"/api/products/price-range?minPrice=10&maxPrice=30",
	} {
		rec := do(t, h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var products []models.Product
		decode(t, rec, &products)
		assert.Len(t, products, 1, path)
	}
}
