// internal/models/product.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the base record as created. Later edits never touch it; they
// are appended to ProductUpdate instead.
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Ref           string          `json:"ref" gorm:"size:50;not null;index"`
	Name          *string         `json:"name" gorm:"size:50"`
	PurchasePrice decimal.Decimal `json:"purchase_price" gorm:"type:decimal(15,2);not null"`
	SellingPrice  decimal.Decimal `json:"selling_price" gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null;index"`
	CategoryID    uint            `json:"category_id" gorm:"not null;index"`
}

// ProductUpdate is one sparse delta in a product's edit log. A nil field
// means "unchanged", never "cleared".
type ProductUpdate struct {
	ID            uint                `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID     uint                `json:"product_id" gorm:"not null;index:idx_product_updates_latest,priority:1"`
	Ref           *string             `json:"ref" gorm:"size:50"`
	Name          *string             `json:"name" gorm:"size:50"`
	PurchasePrice decimal.NullDecimal `json:"purchase_price" gorm:"type:decimal(15,2)"`
	SellingPrice  decimal.NullDecimal `json:"selling_price" gorm:"type:decimal(15,2)"`
	UpdatedAt     time.Time           `json:"updated_at" gorm:"not null;autoUpdateTime:false;index:idx_product_updates_latest,priority:2"`
}

// ProductStock holds the current quantity of a product; at most one row per product.
type ProductStock struct {
	ID        uint `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint `json:"product_id" gorm:"not null;uniqueIndex"`
	Quantity  *int `json:"quantity"`
}
