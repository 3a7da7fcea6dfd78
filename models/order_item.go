package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem stores a snapshot of the referenced variation's name and price.
// ItemID keeps the originating variation id as a plain column, so deleting
// the variation later never touches historical order lines. The composite
// unique index backs the one-line-per-variation rule at the storage layer.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;uniqueIndex:idx_order_item" json:"order_id"`
	Order     Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID    uint            `gorm:"not null;uniqueIndex:idx_order_item" json:"item_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}
