package models

import "time"

// Inventory holds the stock record for exactly one product (one row per
// product, enforced by the unique index on ProductID and re-checked by the
// service). StockLevel never goes below zero; every mutation re-stamps
// LastUpdated.
type Inventory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;uniqueIndex" json:"-"`
	Product      Product   `gorm:"foreignKey:ProductID" json:"product"`
	StockLevel   int       `gorm:"not null;default:0" json:"stockLevel"`
	Location     string    `gorm:"size:200" json:"location,omitempty"`
	ReorderLevel int       `gorm:"not null;default:10" json:"reorderLevel"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// LowStock reports whether the record is at or below its reorder threshold.
func (i Inventory) LowStock() bool {
	return i.StockLevel <= i.ReorderLevel
}
