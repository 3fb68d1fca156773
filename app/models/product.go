package models

import "time"

// Product is one catalogue item. SKU is optional but must be unique when
// present; uniqueness is enforced by the service so that multiple products
// without a SKU can coexist.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	SKU         string    `gorm:"column:sku;size:100;index" json:"sku"`
	Size        string    `gorm:"size:50" json:"size,omitempty"`
	Color       string    `gorm:"size:50" json:"color,omitempty"`
	CategoryID  uint      `gorm:"not null;index" json:"-"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
