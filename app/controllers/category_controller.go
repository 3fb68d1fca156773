package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"gorm.io/gorm"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{service: services.NewCategoryService(db)}
}

type categoryInput struct {
	Name        string `json:"name" validate:"nullable,max=255"`
	Description string `json:"description" validate:"nullable,max=2000"`
}

func (in categoryInput) toModel() models.Category {
	return models.Category{Name: in.Name, Description: in.Description}
}

// List: GET /api/categories
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.All()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, categories)
}

// Get: GET /api/categories/{id}. A miss is a 200 with empty body.
func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	category, found, err := c.service.GetByID(id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !found {
		response.Empty(w)
		return
	}
	response.Success(w, category)
}

// Create: POST /api/categories
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationErrors(w, errs)
		return
	}

	category, err := c.service.Create(in.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, category)
}

// Update: PUT /api/categories/{id}
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	var in categoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationErrors(w, errs)
		return
	}

	category, err := c.service.Update(id, in.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, category)
}

// Delete: DELETE /api/categories/{id}
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	if err := c.service.Delete(id); err != nil {
		fail(w, r, err)
		return
	}
	response.NoContent(w)
}
