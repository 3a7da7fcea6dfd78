package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
	"github.com/yeremiapane/store-app/utils"
)

type OrderItemController struct {
	DB *gorm.DB
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{DB: db}
}

func isDuplicateKeyError(err error) bool {
	// TranslateError covers MySQL; the SQLite driver used in tests still
	// surfaces the raw constraint message.
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateOrderItem adds a line to a waiting order, snapshotting the
// variation's name and price at this moment. A variation may appear on an
// order only once; the composite unique index backs the pre-check so a
// concurrent duplicate insert fails the same way.
func (oic *OrderItemController) CreateOrderItem(c *gin.Context) {
	userID, _ := currentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	orders := OrderController{DB: oic.DB}
	order, err := orders.loadOrder(uint(orderID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := store.CanWriteOrder(&order, userID); err != nil {
		respondStoreError(c, err)
		return
	}

	var req struct {
		ItemID   uint `json:"item_id"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Quantity < 1 {
		respondStoreError(c, store.ErrFieldValidation("quantity",
			"Ensure this value is greater than or equal to 1."))
		return
	}

	var existing int64
	if err := oic.DB.Model(&models.OrderItem{}).
		Where("order_id = ? AND item_id = ?", order.ID, req.ItemID).
		Count(&existing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if existing > 0 {
		respondStoreError(c, store.ErrValidation(
			"OrderItem with item_id "+strconv.Itoa(int(req.ItemID))+" already exists in the order."))
		return
	}

	snapshot, err := store.SnapshotFromVariation(oic.DB, req.ItemID)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			respondStoreError(c, store.ErrValidation(
				"ProductVariation with id "+strconv.Itoa(int(req.ItemID))+" does not exist."))
			return
		}
		respondStoreError(c, err)
		return
	}

	item := models.OrderItem{
		OrderID:  order.ID,
		ItemID:   snapshot.ItemID,
		Name:     snapshot.Name,
		Price:    snapshot.Price,
		Quantity: req.Quantity,
	}
	if err := oic.DB.Create(&item).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondStoreError(c, store.ErrValidation(
				"OrderItem with item_id "+strconv.Itoa(int(req.ItemID))+" already exists in the order."))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order item created", orderItemResponse{
		ID:        item.ID,
		ItemID:    item.ItemID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	})
}

// loadOrderItem resolves an item by the pair (item row id, order id). Both
// must match the same row, otherwise the item does not exist for this order.
func (oic *OrderItemController) loadOrderItem(orderID, itemRowID uint) (models.OrderItem, error) {
	var item models.OrderItem
	err := oic.DB.Where("id = ? AND order_id = ?", itemRowID, orderID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, store.ErrNotFound()
	}
	return item, err
}

// UpdateOrderItem changes the quantity of a line. The snapshot fields stay
// untouched for the life of the item.
func (oic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	userID, _ := currentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("order_id"))
	itemRowID, _ := strconv.Atoi(c.Param("item_id"))

	item, err := oic.loadOrderItem(uint(orderID), uint(itemRowID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	orders := OrderController{DB: oic.DB}
	order, err := orders.loadOrder(item.OrderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := store.CanWriteOrder(&order, userID); err != nil {
		respondStoreError(c, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity < 1 {
		respondStoreError(c, store.ErrFieldValidation("quantity",
			"Ensure this value is greater than or equal to 1."))
		return
	}

	item.Quantity = req.Quantity
	if err := oic.DB.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item updated", orderItemResponse{
		ID:        item.ID,
		ItemID:    item.ItemID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	})
}

// DeleteOrderItem removes a line from a waiting order.
func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	userID, _ := currentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("order_id"))
	itemRowID, _ := strconv.Atoi(c.Param("item_id"))

	item, err := oic.loadOrderItem(uint(orderID), uint(itemRowID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	orders := OrderController{DB: oic.DB}
	order, err := orders.loadOrder(item.OrderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := store.CanWriteOrder(&order, userID); err != nil {
		respondStoreError(c, err)
		return
	}

	if err := oic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
