package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"gorm.io/gorm"
)

// SearchFilters are the optional, ANDed predicates of the combined product
// search. Nil pointers impose no constraint.
type SearchFilters struct {
	Name       string
	CategoryID uint
	MinPrice   *float64
	MaxPrice   *float64
	Size       string
	Color      string
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns every product with its category.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Preload("Category").Find(&products).Error
	return products, err
}

// FindByID looks up a product by primary key; a miss is (zero, false, nil).
func (r *ProductRepository) FindByID(id uint) (models.Product, bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := r.db.Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	return product, err == nil, err
}

// FindBySKU looks up a product by its SKU.
func (r *ProductRepository) FindBySKU(sku string) (models.Product, bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := r.db.Preload("Category").Where("sku = ?", sku).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	return product, err == nil, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(product *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(product).Error
}

// Delete removes a product row.
func (r *ProductRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Product{}, id).Error
}

// CountByCategory returns how many products reference the category.
func (r *ProductRepository) CountByCategory(categoryID uint) (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// SearchByName returns products whose name contains the given substring,
// case-insensitively.
func (r *ProductRepository) SearchByName(name string) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.Preload("Category").
		Where("LOWER(name) LIKE ?", pattern).
		Find(&products).Error
	return products, err
}

// ByCategoryID returns products in the given category.
func (r *ProductRepository) ByCategoryID(categoryID uint) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Find(&products).Error
	return products, err
}

// ByCategoryName returns products whose category has the given name.
func (r *ProductRepository) ByCategoryName(categoryName string) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ?", categoryName).
		Find(&products).Error
	return products, err
}

// ByPriceRange returns products with min <= price <= max (inclusive bounds).
func (r *ProductRepository) ByPriceRange(min, max float64) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Preload("Category").
		Where("price >= ? AND price <= ?", min, max).
		Find(&products).Error
	return products, err
}

// BySize returns products with an exact size match.
func (r *ProductRepository) BySize(size string) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Preload("Category").Where("size = ?", size).Find(&products).Error
	return products, err
}

// ByColor returns products with an exact color match.
func (r *ProductRepository) ByColor(color string) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	err := r.db.Preload("Category").Where("color = ?", color).Find(&products).Error
	return products, err
}

// Search applies every supplied filter, ANDed; omitted filters impose no
// constraint. Name is a case-insensitive substring match, size and color
// are exact.
func (r *ProductRepository) Search(f SearchFilters) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.Preload("Category").Model(&models.Product{})

	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Size != "" {
		q = q.Where("size = ?", f.Size)
	}
	if f.Color != "" {
		q = q.Where("color = ?", f.Color)
	}

	var products []models.Product
	err := q.Find(&products).Error
	return products, err
}
