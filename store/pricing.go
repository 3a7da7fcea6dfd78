package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/models"
)

// Snapshot is the copy of a variation's display name and price taken once,
// when an order item is created. Later catalog edits never reach it.
type Snapshot struct {
	ItemID uint
	Name   string
	Price  decimal.Decimal
}

// SnapshotName composes the display name stored on an order item. The
// placeholder variation contributes nothing, so the product name stands
// alone.
func SnapshotName(productName, variationName string) string {
	if variationName == models.PlaceholderVariationName {
		return productName
	}
	return fmt.Sprintf("%s (%s)", productName, variationName)
}

// SnapshotFromVariation resolves a variation together with its product and
// captures the snapshot fields.
func SnapshotFromVariation(db *gorm.DB, variationID uint) (Snapshot, error) {
	var variation models.ProductVariation
	err := db.Preload("Product").First(&variation, variationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, ErrNotFound()
	}
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ItemID: variation.ID,
		Name:   SnapshotName(variation.Product.Name, variation.Name),
		Price:  variation.Price,
	}, nil
}

// ComputeTotal derives the order total from its current items. It is never
// stored; every read recomputes it.
func ComputeTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
