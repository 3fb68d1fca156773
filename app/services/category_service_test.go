package services_test

import (
	"testing"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := services.NewCategoryService(testDB(t))

	_, err := svc.Create(models.Category{Name: "   "})

	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Category name is required", validation.Message)
}

func TestCreateCategoryTrimsName(t *testing.T) {
	svc := services.NewCategoryService(testDB(t))

	category, err := svc.Create(models.Category{Name: "  Jeans  "})
	require.NoError(t, err)
	assert.Equal(t, "Jeans", category.Name)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := services.NewCategoryService(testDB(t))

	_, err := svc.Create(models.Category{Name: "Jeans"})
	require.NoError(t, err)

	_, err = svc.Create(models.Category{Name: "Jeans"})
	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Category with name 'Jeans' already exists", conflict.Message)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := services.NewCategoryService(testDB(t))

	_, err := svc.Update(7, models.Category{Name: "Jeans"})

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Category not found with id: 7", notFound.Message)
}

func TestUpdateCategoryKeepOwnName(t *testing.T) {
	// Renaming a category to its current name is not a duplicate.
	svc := services.NewCategoryService(testDB(t))

	category, err := svc.Create(models.Category{Name: "Jeans"})
	require.NoError(t, err)

	updated, err := svc.Update(category.ID, models.Category{Name: "Jeans", Description: "Denim"})
	require.NoError(t, err)
	assert.Equal(t, "Denim", updated.Description)
}

func TestDeleteCategoryGuardedByProducts(t *testing.T) {
	db := testDB(t)
	svc := services.NewCategoryService(db)

	category := seedCategory(t, db, "Jackets")
	product := seedProduct(t, db, "Denim Jacket", "JKT-001", 89.99, category.ID)

	err := svc.Delete(category.ID)
	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, services.NewProductService(db).Delete(product.ID))
	require.NoError(t, svc.Delete(category.ID))
}

func TestGetCategoryMissIsData(t *testing.T) {
	svc := services.NewCategoryService(testDB(t))

	_, found, err := svc.GetByID(5)
	require.NoError(t, err)
	assert.False(t, found)
}
