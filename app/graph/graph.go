// Package graph exposes a read-only GraphQL view of the catalogue at
// /api/graphql. Mutations stay on the REST surface, which carries the
// validation and stock semantics.
package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	schema graphql.Schema
}

// New builds the schema over the services layer.
func New(db *gorm.DB) (*Handler, error) {
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	inventoryService := services.NewInventoryService(db)

	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.Float},
			"sku":         &graphql.Field{Type: graphql.String},
			"size":        &graphql.Field{Type: graphql.String},
			"color":       &graphql.Field{Type: graphql.String},
			"category":    &graphql.Field{Type: categoryType},
		},
	})

	inventoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Inventory",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.Int},
			"product":      &graphql.Field{Type: productType},
			"stockLevel":   &graphql.Field{Type: graphql.Int},
			"location":     &graphql.Field{Type: graphql.String},
			"reorderLevel": &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryService.All()
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productService.All()
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					product, found, err := productService.GetByID(uint(id))
					if err != nil || !found {
						return nil, err
					}
					return product, nil
				},
			},
			"productBySku": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"sku": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					sku, _ := p.Args["sku"].(string)
					product, found, err := productService.GetBySKU(sku)
					if err != nil || !found {
						return nil, err
					}
					return product, nil
				},
			},
			"inventory": &graphql.Field{
				Type: graphql.NewList(inventoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return inventoryService.All()
				},
			},
			"lowStock": &graphql.Field{
				Type: graphql.NewList(inventoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return inventoryService.LowStock()
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return nil, err
	}

	return &Handler{schema: schema}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "invalid GraphQL request body")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  body.Query,
		OperationName:  body.OperationName,
		VariableValues: body.Variables,
		Context:        r.Context(),
	})
	response.Success(w, result)
}
