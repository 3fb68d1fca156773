package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"gorm.io/gorm"
)

// defaultReorderLevel applies when a create body omits reorderLevel.
const defaultReorderLevel = 10

type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{service: services.NewInventoryService(db)}
}

// inventoryInput carries reorderLevel as a pointer so an omitted field can be
// told apart from an explicit zero.
type inventoryInput struct {
	StockLevel   int    `json:"stockLevel" validate:"gte=0"`
	Location     string `json:"location" validate:"nullable,max=200"`
	ReorderLevel *int   `json:"reorderLevel"`
}

func (in inventoryInput) toModel() models.Inventory {
	record := models.Inventory{
		StockLevel:   in.StockLevel,
		Location:     in.Location,
		ReorderLevel: defaultReorderLevel,
	}
	if in.ReorderLevel != nil {
		record.ReorderLevel = *in.ReorderLevel
	}
	return record
}

type stockLevelInput struct {
	StockLevel *int `json:"stockLevel"`
}

type quantityInput struct {
	Quantity *int `json:"quantity"`
}

// List: GET /api/inventory
func (c *InventoryController) List(w http.ResponseWriter, r *http.Request) {
	records, err := c.service.All()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, records)
}

// Get: GET /api/inventory/{id}. A miss is a 200 with empty body.
func (c *InventoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	record, found, err := c.service.GetByID(id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !found {
		response.Empty(w)
		return
	}
	response.Success(w, record)
}

// GetByProduct: GET /api/inventory/product/{productId}
func (c *InventoryController) GetByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		badID(w, "productId")
		return
	}

	record, found, err := c.service.GetByProductID(productID)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !found {
		response.Empty(w)
		return
	}
	response.Success(w, record)
}

// Create: POST /api/inventory/product/{productId}
func (c *InventoryController) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		badID(w, "productId")
		return
	}

	var in inventoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationErrors(w, errs)
		return
	}

	record, err := c.service.Create(r.Context(), productID, in.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, record)
}

// Update: PUT /api/inventory/{id}
func (c *InventoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	var in inventoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationErrors(w, errs)
		return
	}

	record, err := c.service.Update(r.Context(), id, in.toModel())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, record)
}

// SetStock: PUT /api/inventory/{id}/stock with body {"stockLevel": n}.
// Negative levels are rejected by the service before the existence check.
func (c *InventoryController) SetStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	var in stockLevelInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if in.StockLevel == nil {
		response.BadRequest(w, "The stockLevel field is required")
		return
	}

	record, err := c.service.SetStockLevel(r.Context(), id, *in.StockLevel)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, record)
}

// SetStockByProduct: PUT /api/inventory/product/{productId}/stock
func (c *InventoryController) SetStockByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		badID(w, "productId")
		return
	}

	var in stockLevelInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if in.StockLevel == nil {
		response.BadRequest(w, "The stockLevel field is required")
		return
	}

	record, err := c.service.SetStockLevelByProductID(r.Context(), productID, *in.StockLevel)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, record)
}

// AddStock: POST /api/inventory/{id}/add-stock with body {"quantity": n}.
func (c *InventoryController) AddStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	var in quantityInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if in.Quantity == nil {
		response.BadRequest(w, "The quantity field is required")
		return
	}

	record, err := c.service.AddStock(r.Context(), id, *in.Quantity)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, record)
}

// RemoveStock: POST /api/inventory/{id}/remove-stock with body {"quantity": n}.
func (c *InventoryController) RemoveStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	var in quantityInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if in.Quantity == nil {
		response.BadRequest(w, "The quantity field is required")
		return
	}

	record, err := c.service.RemoveStock(r.Context(), id, *in.Quantity)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, record)
}

// Delete: DELETE /api/inventory/{id}
func (c *InventoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badID(w, "id")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.NoContent(w)
}

// LowStock: GET /api/inventory/low-stock — at or below the record's own
// reorder level.
func (c *InventoryController) LowStock(w http.ResponseWriter, r *http.Request) {
	records, err := c.service.LowStock()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, records)
}

// Below: GET /api/inventory/below/{stockLevel} — strictly below a global
// threshold.
func (c *InventoryController) Below(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.Atoi(chi.URLParam(r, "stockLevel"))
	if err != nil {
		response.BadRequest(w, "Invalid stockLevel in path")
		return
	}

	records, err := c.service.BelowStockLevel(threshold)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, records)
}

// ByLocation: GET /api/inventory/location/{location}
func (c *InventoryController) ByLocation(w http.ResponseWriter, r *http.Request) {
	records, err := c.service.ByLocation(chi.URLParam(r, "location"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, records)
}
