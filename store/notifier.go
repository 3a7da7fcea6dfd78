package store

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/utils"
)

// Notifier delivers order-status notices to customers on a best-effort
// basis. Dispatch happens after the status change is already committed, on a
// separate goroutine; a failed delivery is logged and never rolls the status
// back.
type Notifier struct {
	db *gorm.DB
	wg sync.WaitGroup
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// OrderStatusChanged records a notification row for the order's customer.
func (n *Notifier) OrderStatusChanged(order models.Order) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		notif := models.Notification{
			CustomerID: order.CustomerID,
			OrderID:    order.ID,
			Message:    fmt.Sprintf("Order #%d is now %s", order.ID, order.Status),
		}
		if err := n.db.Create(&notif).Error; err != nil {
			utils.ErrorLogger.Errorf("Failed to notify customer %d about order %d: %v",
				order.CustomerID, order.ID, err)
			return
		}
		utils.InfoLogger.Printf("Notified customer %d: %s", order.CustomerID, notif.Message)
	}()
}

// Wait blocks until all in-flight notifications are done. Used on shutdown
// and in tests.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
