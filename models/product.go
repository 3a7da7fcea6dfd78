package models

import "time"

type Product struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	Name       string             `gorm:"type:varchar(255);not null" json:"name"`
	Active     bool               `gorm:"not null;default:true" json:"active"`
	Variations []ProductVariation `gorm:"foreignKey:ProductID" json:"variations"`
	CreatedAt  time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time          `gorm:"not null" json:"updated_at"`
}
