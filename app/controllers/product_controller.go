package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"gorm.io/gorm"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{service: services.NewProductService(db)}
}

// productInput mirrors the wire shape: the category reference arrives as a
// nested object carrying only its id.
type productInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	SKU         string  `json:"sku" validate:"nullable,max=100"`
	Size        string  `json:"size" validate:"nullable,max=50"`
	Color       string  `json:"color" validate:"nullable,max=50"`
	Category    struct {
		ID uint `json:"id"`
	} `json:"category"`
}

func (in productInput) toModel() models.Product {
	return models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		SKU:         in.SKU,
		Size:        in.Size,
		Color:       in.Color,
		CategoryID:  in.Category.ID,
	}
}

// List: GET /api/products
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.All()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Get: GET /api/products/{id}. A miss is a 200 with empty body.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	product, found, err := c.service.GetByID(id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !found {
		response.Empty(w)
		return
	}
	response.Success(w, product)
}

// GetBySKU: GET /api/products/sku/{sku}
func (c *ProductController) GetBySKU(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	product, found, err := c.service.GetBySKU(sku)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !found {
		response.Empty(w)
		return
	}
	response.Success(w, product)
}

// Create: POST /api/products
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationErrors(w, errs)
		return
	}

	product, err := c.service.Create(in.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

// Update: PUT /api/products/{id}
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationErrors(w, errs)
		return
	}

	product, err := c.service.Update(id, in.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Delete: DELETE /api/products/{id}
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
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

// Search: GET /api/products/search — every filter optional, ANDed together.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := repositories.SearchFilters{
		Name:  q.Get("name"),
		Size:  q.Get("size"),
		Color: q.Get("color"),
	}

	if raw := q.Get("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(w, "Invalid categoryId query parameter")
			return
		}
		filters.CategoryID = uint(id)
	}

	for _, p := range []struct {
		key  string
		dest **float64
	}{
		{"minPrice", &filters.MinPrice},
		{"maxPrice", &filters.MaxPrice},
	} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "Invalid "+p.key+" query parameter")
			return
		}
		*p.dest = &v
	}

	products, err := c.service.Search(filters)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// SearchByName: GET /api/products/search/name?name=...
func (c *ProductController) SearchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "The name query parameter is required")
		return
	}

	products, err := c.service.SearchByName(name)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// ByCategory: GET /api/products/category/{categoryId}
func (c *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "categoryId")
	if !ok {
		badID(w, "categoryId")
		return
	}

	products, err := c.service.ByCategoryID(categoryID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// ByCategoryName: GET /api/products/category/name/{categoryName}
func (c *ProductController) ByCategoryName(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ByCategoryName(chi.URLParam(r, "categoryName"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// ByPriceRange: GET /api/products/price-range?minPrice=..&maxPrice=..
// Both bounds are required and inclusive.
func (c *ProductController) ByPriceRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minPrice, err := strconv.ParseFloat(q.Get("minPrice"), 64)
	if err != nil {
		response.BadRequest(w, "The minPrice query parameter is required and must be a number")
		return
	}
	maxPrice, err := strconv.ParseFloat(q.Get("maxPrice"), 64)
	if err != nil {
		response.BadRequest(w, "The maxPrice query parameter is required and must be a number")
		return
	}

	products, err := c.service.ByPriceRange(minPrice, maxPrice)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// BySize: GET /api/products/size/{size}
func (c *ProductController) BySize(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.BySize(chi.URLParam(r, "size"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// ByColor: GET /api/products/color/{color}
func (c *ProductController) ByColor(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ByColor(chi.URLParam(r, "color"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}
