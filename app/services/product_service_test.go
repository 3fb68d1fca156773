package services_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	t.Helper()

	tees := seedCategory(t, db, "T-Shirts")
	jeans := seedCategory(t, db, "Jeans")

	seedProduct(t, db, "Classic Tee", "TSH-001", 19.99, tees.ID)
	seedProduct(t, db, "Graphic Tee", "TSH-002", 24.99, tees.ID)
	seedProduct(t, db, "Slim Fit Jeans", "JNS-001", 59.99, jeans.ID)
	return tees, jeans
}

func TestCreateProductRequiresCategory(t *testing.T) {
	svc := services.NewProductService(testDB(t))

	_, err := svc.Create(models.Product{Name: "Classic Tee"})

	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Category is required for product", validation.Message)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc := services.NewProductService(testDB(t))

	_, err := svc.Create(models.Product{Name: "Classic Tee", CategoryID: 9})

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Category not found with id: 9", notFound.Message)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db, "T-Shirts")
	svc := services.NewProductService(db)

	_, err := svc.Create(models.Product{Name: "Classic Tee", SKU: "TSH-001", CategoryID: category.ID})
	require.NoError(t, err)

	_, err = svc.Create(models.Product{Name: "Other Tee", SKU: "TSH-001", CategoryID: category.ID})
	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Product with SKU 'TSH-001' already exists", validation.Message)
}

func TestCreateProductsWithoutSKU(t *testing.T) {
	// Uniqueness applies to non-empty SKUs only.
	db := testDB(t)
	category := seedCategory(t, db, "T-Shirts")
	svc := services.NewProductService(db)

	_, err := svc.Create(models.Product{Name: "Tee One", CategoryID: category.ID})
	require.NoError(t, err)
	_, err = svc.Create(models.Product{Name: "Tee Two", CategoryID: category.ID})
	require.NoError(t, err)
}

func TestUpdateProductSKUAgainstOthers(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db, "T-Shirts")
	svc := services.NewProductService(db)

	first := seedProduct(t, db, "Classic Tee", "TSH-001", 19.99, category.ID)
	second := seedProduct(t, db, "Graphic Tee", "TSH-002", 24.99, category.ID)

	// Keeping your own SKU is fine.
	_, err := svc.Update(first.ID, models.Product{Name: "Classic Tee v2", SKU: "TSH-001", Price: 21.99})
	require.NoError(t, err)

	// Taking another product's SKU is not.
	_, err = svc.Update(second.ID, models.Product{Name: "Graphic Tee", SKU: "TSH-001", Price: 24.99})
	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateProductUnknownCategory(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db, "T-Shirts")
	product := seedProduct(t, db, "Classic Tee", "TSH-001", 19.99, category.ID)
	svc := services.NewProductService(db)

	_, err := svc.Update(product.ID, models.Product{Name: "Classic Tee", CategoryID: 77})

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteProductCascadesInventory(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db, "T-Shirts")
	product := seedProduct(t, db, "Classic Tee", "TSH-001", 19.99, category.ID)

	inventorySvc := services.NewInventoryService(db)
	record, err := inventorySvc.Create(context.Background(), product.ID, models.Inventory{StockLevel: 5})
	require.NoError(t, err)

	require.NoError(t, services.NewProductService(db).Delete(product.ID))

	_, found, err := inventorySvc.GetByID(record.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	svc := services.NewProductService(db)

	products, err := svc.SearchByName("tee")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = svc.SearchByName("CLASSIC")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestByPriceRangeInclusive(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	svc := services.NewProductService(db)

	products, err := svc.ByPriceRange(19.99, 24.99)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestByCategoryName(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	svc := services.NewProductService(db)

	products, err := svc.ByCategoryName("Jeans")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Slim Fit Jeans", products[0].Name)
}

func TestCombinedSearchFiltersAreAnded(t *testing.T) {
	db := testDB(t)
	tees, _ := seedCatalog(t, db)
	svc := services.NewProductService(db)

	products, err := svc.Search(repositories.SearchFilters{
		Name:       "tee",
		CategoryID: tees.ID,
		MinPrice:   floatPtr(20),
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Graphic Tee", products[0].Name)

	// No filters returns the whole catalogue.
	products, err = svc.Search(repositories.SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestGetProductEagerLoadsCategory(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db, "T-Shirts")
	product := seedProduct(t, db, "Classic Tee", "TSH-001", 19.99, category.ID)

	got, found, err := services.NewProductService(db).GetByID(product.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "T-Shirts", got.Category.Name)
}
