package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
)

func TestNotifierOrderStatusChanged(t *testing.T) {
	db := setupStoreTestDB(t)

	user := models.User{Name: "Tester", Email: "tester@example.com", Password: "x", Role: models.RoleCustomer}
	db.Create(&user)
	customer := models.Customer{UserID: user.ID}
	db.Create(&customer)
	order := models.Order{CustomerID: customer.ID, Location: store.LocationInHouse, Status: store.StatusReady}
	db.Create(&order)

	notifier := store.NewNotifier(db)
	notifier.OrderStatusChanged(order)
	notifier.Wait()

	var notifs []models.Notification
	db.Find(&notifs)
	assert.Len(t, notifs, 1)
	assert.Equal(t, customer.ID, notifs[0].CustomerID)
	assert.Equal(t, order.ID, notifs[0].OrderID)
	assert.Contains(t, notifs[0].Message, "ready")
}
