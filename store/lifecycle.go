package store

import (
	"github.com/yeremiapane/store-app/models"
)

// Order statuses in their forward order. Administrators assign statuses
// freely across the enum; the gate below only cares about the current state.
const (
	StatusWaiting     = "waiting"
	StatusPreparation = "preparation"
	StatusReady       = "ready"
	StatusDelivered   = "delivered"
)

const (
	LocationInHouse  = "in_house"
	LocationTakeAway = "take_away"
)

var orderStatuses = []string{StatusWaiting, StatusPreparation, StatusReady, StatusDelivered}

func ValidStatus(s string) bool {
	for _, known := range orderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func ValidLocation(s string) bool {
	return s == LocationInHouse || s == LocationTakeAway
}

// AssertMutable gates every line-item mutation and the order location change:
// items may only be added, changed or removed while the order still waits and
// has not been canceled.
func AssertMutable(order *models.Order) error {
	if order.Canceled {
		return &ForbiddenError{Detail: "order is canceled"}
	}
	if order.Status != StatusWaiting {
		return &ForbiddenError{Detail: "order not in waiting status"}
	}
	return nil
}

// OrderPatch carries the customer-editable order fields. Nil means the field
// is absent from the request.
type OrderPatch struct {
	Location *string
	Canceled *bool
}

// ValidateOrderPatch applies the cancellation rules: a delivered order cannot
// be canceled, a canceled order can neither be released nor touched again,
// and a location change requires the order to still be mutable.
func ValidateOrderPatch(order *models.Order, patch OrderPatch) error {
	if patch.Canceled != nil {
		if order.Status == StatusDelivered && *patch.Canceled {
			return ErrValidation("Delivered order cannot be canceled")
		}
		if order.Canceled && !*patch.Canceled {
			return ErrValidation("Canceled order cannot be released")
		}
	}
	if order.Canceled {
		return ErrValidation("Canceled order cannot be updated")
	}
	if patch.Location != nil {
		if !ValidLocation(*patch.Location) {
			return ErrFieldValidation("location", "%q is not a valid choice.", *patch.Location)
		}
		if *patch.Location != order.Location {
			if err := AssertMutable(order); err != nil {
				return err
			}
		}
	}
	return nil
}
