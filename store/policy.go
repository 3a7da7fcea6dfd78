package store

import (
	"github.com/yeremiapane/store-app/models"
)

// Authorization policy for orders and their items. Reading and writing are
// separate checks: the owning customer may always read the order, but may
// only write while the lifecycle gate allows it.

func IsAdministrator(role string) bool {
	return role == models.RoleAdmin
}

// IsOwningCustomer expects order.Customer to be loaded.
func IsOwningCustomer(order *models.Order, userID uint) bool {
	return order.Customer.UserID == userID
}

func CanReadOrder(order *models.Order, userID uint) error {
	if !IsOwningCustomer(order, userID) {
		return &ForbiddenError{Detail: "You do not have permission to perform this action."}
	}
	return nil
}

func CanWriteOrder(order *models.Order, userID uint) error {
	if err := CanReadOrder(order, userID); err != nil {
		return err
	}
	return AssertMutable(order)
}
