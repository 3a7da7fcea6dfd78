package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
	"github.com/yeremiapane/store-app/utils"
)

type AdminOrderController struct {
	DB       *gorm.DB
	Notifier *store.Notifier
}

func NewAdminOrderController(db *gorm.DB, notifier *store.Notifier) *AdminOrderController {
	return &AdminOrderController{DB: db, Notifier: notifier}
}

// GetAllOrders lists every order with items and computed totals.
func (aoc *AdminOrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := aoc.DB.Preload("OrderItems").Order("created_at").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	responses := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, newOrderResponse(order))
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", responses)
}

// UpdateOrderStatus sets the order status to any value of the enum. The
// update commits first; the customer notification is dispatched afterwards
// and never affects the response.
func (aoc *AdminOrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	orders := OrderController{DB: aoc.DB}
	order, err := orders.loadOrder(uint(orderID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !store.ValidStatus(req.Status) {
		respondStoreError(c, store.ErrFieldValidation("status", "%q is not a valid choice.", req.Status))
		return
	}

	order.Status = req.Status
	if err := aoc.DB.Omit(clause.Associations).Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	aoc.Notifier.OrderStatusChanged(order)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", newOrderResponse(order))
}
