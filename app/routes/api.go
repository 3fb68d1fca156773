// Package routes declares the HTTP surface of the backend.
package routes

import (
	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"gorm.io/gorm"
)

// Register mounts every API route on r. All application routes live under
// /api; operational endpoints (/metrics, /healthz) are mounted by the server.
func Register(r *router.Router, db *gorm.DB) {
	api := r.Group("/api")

	registerCategories(api, db)
	registerProducts(api, db)
	registerInventory(api, db)
}

func registerCategories(api *router.Group, db *gorm.DB) {
	c := controllers.NewCategoryController(db)
	g := api.Group("/categories")

	g.Get("/", "categories.index", c.List)
	g.Get("/{id}", "categories.show", c.Get)
	g.Post("/", "categories.store", c.Create)
	g.Put("/{id}", "categories.update", c.Update)
	g.Delete("/{id}", "categories.destroy", c.Delete)
}

func registerProducts(api *router.Group, db *gorm.DB) {
	c := controllers.NewProductController(db)
	g := api.Group("/products")

	g.Get("/", "products.index", c.List)
	g.Get("/{id}", "products.show", c.Get)
	g.Get("/sku/{sku}", "products.show-by-sku", c.GetBySKU)
	g.Post("/", "products.store", c.Create)
	g.Put("/{id}", "products.update", c.Update)
	g.Delete("/{id}", "products.destroy", c.Delete)

	g.Get("/search", "products.search", c.Search)
	g.Get("/search/name", "products.search-by-name", c.SearchByName)
	g.Get("/category/{categoryId}", "products.by-category", c.ByCategory)
	g.Get("/category/name/{categoryName}", "products.by-category-name", c.ByCategoryName)
	g.Get("/price-range", "products.by-price-range", c.ByPriceRange)
	g.Get("/size/{size}", "products.by-size", c.BySize)
	g.Get("/color/{color}", "products.by-color", c.ByColor)
}

func registerInventory(api *router.Group, db *gorm.DB) {
	c := controllers.NewInventoryController(db)
	g := api.Group("/inventory")

	g.Get("/", "inventory.index", c.List)
	g.Get("/{id}", "inventory.show", c.Get)
	g.Get("/product/{productId}", "inventory.show-by-product", c.GetByProduct)
	g.Post("/product/{productId}", "inventory.store", c.Create)
	g.Put("/{id}", "inventory.update", c.Update)
	g.Delete("/{id}", "inventory.destroy", c.Delete)

	g.Put("/{id}/stock", "inventory.set-stock", c.SetStock)
	g.Put("/product/{productId}/stock", "inventory.set-stock-by-product", c.SetStockByProduct)
	g.Post("/{id}/add-stock", "inventory.add-stock", c.AddStock)
	g.Post("/{id}/remove-stock", "inventory.remove-stock", c.RemoveStock)

	g.Get("/low-stock", "inventory.low-stock", c.LowStock)
	g.Get("/below/{stockLevel}", "inventory.below", c.Below)
	g.Get("/location/{location}", "inventory.by-location", c.ByLocation)
}
