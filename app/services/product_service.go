package services

import (
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"gorm.io/gorm"
)

// productsCacheKey caches the full product listing; invalidated on every
// product mutation.
const productsCacheKey = "products:all"

const productsCacheTTL = 30 * time.Second

// ProductService owns product CRUD and the search family. It enforces that
// every product references an existing category and that a non-empty SKU is
// unique across the catalogue.
type ProductService struct {
	db         *gorm.DB
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db:         db,
		products:   repositories.NewProductRepository(db),
		categories: repositories.NewCategoryRepository(db),
	}
}

// All returns every product, read through the cache.
func (s *ProductService) All() ([]models.Product, error) {
	var products []models.Product
	if cache.Get(productsCacheKey, &products) {
		return products, nil
	}

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	_ = cache.Set(productsCacheKey, products, productsCacheTTL)
	return products, nil
}

// GetByID returns (product, true) or (zero, false) on a read miss.
func (s *ProductService) GetByID(id uint) (models.Product, bool, error) {
	return s.products.FindByID(id)
}

// GetBySKU returns (product, true) or (zero, false) on a read miss.
func (s *ProductService) GetBySKU(sku string) (models.Product, bool, error) {
	return s.products.FindBySKU(sku)
}

// Create validates the category reference and SKU uniqueness, then persists.
func (s *ProductService) Create(product models.Product) (models.Product, error) {
	if product.CategoryID == 0 {
		return models.Product{}, validationf("Category is required for product")
	}

	category, found, err := s.categories.FindByID(product.CategoryID)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, notFoundf("Category not found with id: %d", product.CategoryID)
	}

	if product.SKU != "" {
		if _, exists, err := s.products.FindBySKU(product.SKU); err != nil {
			return models.Product{}, err
		} else if exists {
			return models.Product{}, validationf("Product with SKU '%s' already exists", product.SKU)
		}
	}

	product.Category = category
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}

	_ = cache.Del(productsCacheKey)
	return product, nil
}

// Update overwrites the mutable fields of an existing product. A changed
// category is re-validated; a changed SKU is re-checked for uniqueness
// against every other product.
func (s *ProductService) Update(id uint, details models.Product) (models.Product, error) {
	product, found, err := s.products.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, notFoundf("Product not found with id: %d", id)
	}

	if details.CategoryID != 0 {
		category, ok, err := s.categories.FindByID(details.CategoryID)
		if err != nil {
			return models.Product{}, err
		}
		if !ok {
			return models.Product{}, notFoundf("Category not found with id: %d", details.CategoryID)
		}
		product.CategoryID = details.CategoryID
		product.Category = category
	}

	if details.SKU != "" && details.SKU != product.SKU {
		if other, exists, err := s.products.FindBySKU(details.SKU); err != nil {
			return models.Product{}, err
		} else if exists && other.ID != id {
			return models.Product{}, validationf("Product with SKU '%s' already exists", details.SKU)
		}
	}

	product.Name = details.Name
	product.Description = details.Description
	product.Price = details.Price
	product.SKU = details.SKU
	product.Size = details.Size
	product.Color = details.Color

	if err := s.products.Save(&product); err != nil {
		return models.Product{}, err
	}

	_ = cache.Del(productsCacheKey)
	return product, nil
}

// Delete removes a product together with its inventory record, in one
// transaction, so no orphaned inventory row can survive.
func (s *ProductService) Delete(id uint) error {
	_, found, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return notFoundf("Product not found with id: %d", id)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewInventoryRepository(tx).DeleteByProductID(id); err != nil {
			return err
		}
		return repositories.NewProductRepository(tx).Delete(id)
	})
	if err != nil {
		return err
	}

	_ = cache.Del(productsCacheKey)
	return nil
}

// SearchByName: case-insensitive substring match on the product name.
func (s *ProductService) SearchByName(name string) ([]models.Product, error) {
	return s.products.SearchByName(name)
}

// ByCategoryID lists the products of one category.
func (s *ProductService) ByCategoryID(categoryID uint) ([]models.Product, error) {
	return s.products.ByCategoryID(categoryID)
}

// ByCategoryName lists products whose category carries the given name.
func (s *ProductService) ByCategoryName(categoryName string) ([]models.Product, error) {
	return s.products.ByCategoryName(categoryName)
}

// ByPriceRange lists products with min <= price <= max, bounds inclusive.
func (s *ProductService) ByPriceRange(min, max float64) ([]models.Product, error) {
	return s.products.ByPriceRange(min, max)
}

// BySize lists products with an exact size match.
func (s *ProductService) BySize(size string) ([]models.Product, error) {
	return s.products.BySize(size)
}

// ByColor lists products with an exact color match.
func (s *ProductService) ByColor(color string) ([]models.Product, error) {
	return s.products.ByColor(color)
}

// Search ANDs every supplied filter; omitted filters impose no constraint.
func (s *ProductService) Search(filters repositories.SearchFilters) ([]models.Product, error) {
	return s.products.Search(filters)
}
