// Package repositories holds the database access layer. Every repository is
// bound to an injected *gorm.DB so the same types work against the live
// store, a test database, or a transaction handle.
package repositories

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// All returns every category.
func (r *CategoryRepository) All() ([]models.Category, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

// FindByID looks up a category by primary key. A miss is data, not an
// error: (zero, false, nil).
func (r *CategoryRepository) FindByID(id uint) (models.Category, bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, false, nil
	}
	return category, err == nil, err
}

// FindByName looks up a category by its unique name.
func (r *CategoryRepository) FindByName(name string) (models.Category, bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, false, nil
	}
	return category, err == nil, err
}

// Create persists a new category.
func (r *CategoryRepository) Create(category *models.Category) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(category).Error
}

// Save persists changes to an existing category.
func (r *CategoryRepository) Save(category *models.Category) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(category).Error
}

// Delete removes a category row.
func (r *CategoryRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Category{}, id).Error
}
