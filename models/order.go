package models

import (
	"time"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	Customer   Customer    `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Location   string      `gorm:"type:varchar(20);not null" json:"location"`
	Status     string      `gorm:"type:varchar(20);not null;default:'waiting'" json:"status"`
	Canceled   bool        `gorm:"not null;default:false" json:"canceled"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}
