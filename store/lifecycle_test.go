package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestAssertMutable(t *testing.T) {
	order := &models.Order{Status: store.StatusWaiting}
	assert.NoError(t, store.AssertMutable(order))

	for _, status := range []string{store.StatusPreparation, store.StatusReady, store.StatusDelivered} {
		order := &models.Order{Status: status}
		err := store.AssertMutable(order)
		assert.Error(t, err)
		assert.Equal(t, "order not in waiting status", err.Error())
	}

	canceled := &models.Order{Status: store.StatusWaiting, Canceled: true}
	err := store.AssertMutable(canceled)
	assert.Error(t, err)
	assert.Equal(t, "order is canceled", err.Error())
}

func TestValidateOrderPatchCancellation(t *testing.T) {
	// Cancellation is allowed from any non-delivered status.
	for _, status := range []string{store.StatusWaiting, store.StatusPreparation, store.StatusReady} {
		order := &models.Order{Status: status}
		err := store.ValidateOrderPatch(order, store.OrderPatch{Canceled: boolPtr(true)})
		assert.NoError(t, err, "cancellation from %s", status)
	}

	delivered := &models.Order{Status: store.StatusDelivered}
	err := store.ValidateOrderPatch(delivered, store.OrderPatch{Canceled: boolPtr(true)})
	assert.Error(t, err)
	assert.Equal(t, "Delivered order cannot be canceled", err.Error())
}

func TestValidateOrderPatchCanceledIsFrozen(t *testing.T) {
	order := &models.Order{Status: store.StatusWaiting, Canceled: true}

	err := store.ValidateOrderPatch(order, store.OrderPatch{Canceled: boolPtr(false)})
	assert.Error(t, err)
	assert.Equal(t, "Canceled order cannot be released", err.Error())

	err = store.ValidateOrderPatch(order, store.OrderPatch{Location: strPtr(store.LocationTakeAway)})
	assert.Error(t, err)
	assert.Equal(t, "Canceled order cannot be updated", err.Error())

	// Re-sending canceled=true is still an update of a frozen order.
	err = store.ValidateOrderPatch(order, store.OrderPatch{Canceled: boolPtr(true)})
	assert.Error(t, err)
	assert.Equal(t, "Canceled order cannot be updated", err.Error())
}

func TestValidateOrderPatchLocation(t *testing.T) {
	order := &models.Order{Status: store.StatusWaiting, Location: store.LocationInHouse}
	assert.NoError(t, store.ValidateOrderPatch(order, store.OrderPatch{Location: strPtr(store.LocationTakeAway)}))

	err := store.ValidateOrderPatch(order, store.OrderPatch{Location: strPtr("drive_through")})
	var validation *store.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "location", validation.Field)

	// Location changes obey the waiting gate.
	preparing := &models.Order{Status: store.StatusPreparation, Location: store.LocationInHouse}
	err = store.ValidateOrderPatch(preparing, store.OrderPatch{Location: strPtr(store.LocationTakeAway)})
	var forbidden *store.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)

	// Re-sending the current location is a no-op, not a gated change.
	err = store.ValidateOrderPatch(preparing, store.OrderPatch{Location: strPtr(store.LocationInHouse)})
	assert.NoError(t, err)
}

func TestValidStatusAndLocation(t *testing.T) {
	for _, s := range []string{"waiting", "preparation", "ready", "delivered"} {
		assert.True(t, store.ValidStatus(s))
	}
	assert.False(t, store.ValidStatus("done"))

	assert.True(t, store.ValidLocation("in_house"))
	assert.True(t, store.ValidLocation("take_away"))
	assert.False(t, store.ValidLocation("delivery"))
}
