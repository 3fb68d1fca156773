package services

import (
	"strings"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"gorm.io/gorm"
)

// CategoryService owns category CRUD. Deletion is guarded by an explicit
// pre-check against products still referencing the category, rather than
// relying on the store's foreign-key behavior.
type CategoryService struct {
	categories *repositories.CategoryRepository
	products   *repositories.ProductRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		categories: repositories.NewCategoryRepository(db),
		products:   repositories.NewProductRepository(db),
	}
}

// All returns every category.
func (s *CategoryService) All() ([]models.Category, error) {
	return s.categories.All()
}

// GetByID returns (category, true) or (zero, false) on a read miss.
func (s *CategoryService) GetByID(id uint) (models.Category, bool, error) {
	return s.categories.FindByID(id)
}

// Create validates and persists a new category.
func (s *CategoryService) Create(category models.Category) (models.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return models.Category{}, validationf("Category name is required")
	}

	if _, found, err := s.categories.FindByName(category.Name); err != nil {
		return models.Category{}, err
	} else if found {
		return models.Category{}, conflictf("Category with name '%s' already exists", category.Name)
	}

	if err := s.categories.Create(&category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// Update overwrites the mutable fields of an existing category.
func (s *CategoryService) Update(id uint, details models.Category) (models.Category, error) {
	category, found, err := s.categories.FindByID(id)
	if err != nil {
		return models.Category{}, err
	}
	if !found {
		return models.Category{}, notFoundf("Category not found with id: %d", id)
	}

	details.Name = strings.TrimSpace(details.Name)
	if details.Name == "" {
		return models.Category{}, validationf("Category name is required")
	}

	if other, ok, err := s.categories.FindByName(details.Name); err != nil {
		return models.Category{}, err
	} else if ok && other.ID != id {
		return models.Category{}, conflictf("Category with name '%s' already exists", details.Name)
	}

	category.Name = details.Name
	category.Description = details.Description

	if err := s.categories.Save(&category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// Delete removes a category unless products still reference it.
func (s *CategoryService) Delete(id uint) error {
	_, found, err := s.categories.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return notFoundf("Category not found with id: %d", id)
	}

	count, err := s.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return conflictf("Cannot delete category with id %d: %d product(s) still reference it", id, count)
	}

	return s.categories.Delete(id)
}
