package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderVariationName marks the auto-created variation of a product
// that was created without any explicit variations. It keeps every product
// orderable through a variation reference.
const PlaceholderVariationName = "-"

type ProductVariation struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}
