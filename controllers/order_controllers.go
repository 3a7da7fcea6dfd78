package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
	"github.com/yeremiapane/store-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// loadOrder fetches an order with its customer and items, mapping a missing
// row to the store NotFound error.
func (oc *OrderController) loadOrder(orderID uint) (models.Order, error) {
	var order models.Order
	err := oc.DB.Preload("Customer").Preload("OrderItems").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, store.ErrNotFound()
	}
	return order, err
}

// CreateOrder places a new order with its line items in one request. All
// variation references are resolved and validated before anything is
// written; the order and its items land in a single transaction.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondDetail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	type itemRequest struct {
		ProductVariationID uint `json:"product_variation_id"`
		Quantity           int  `json:"quantity"`
	}
	type request struct {
		Location   string        `json:"location"`
		OrderItems []itemRequest `json:"order_items"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !store.ValidLocation(req.Location) {
		respondStoreError(c, store.ErrFieldValidation("location", "%q is not a valid choice.", req.Location))
		return
	}

	seen := make(map[uint]bool, len(req.OrderItems))
	variationIDs := make([]uint, 0, len(req.OrderItems))
	for _, line := range req.OrderItems {
		if line.Quantity < 1 {
			respondStoreError(c, store.ErrFieldValidation("quantity",
				"Ensure this value is greater than or equal to 1."))
			return
		}
		if seen[line.ProductVariationID] {
			respondStoreError(c, store.ErrValidation(
				"Duplicate product_variation_id "+strconv.Itoa(int(line.ProductVariationID))+" in order items."))
			return
		}
		seen[line.ProductVariationID] = true
		variationIDs = append(variationIDs, line.ProductVariationID)
	}

	var variations []models.ProductVariation
	if len(variationIDs) > 0 {
		if err := oc.DB.Preload("Product").Where("id IN ?", variationIDs).Find(&variations).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	variationByID := make(map[uint]models.ProductVariation, len(variations))
	for _, v := range variations {
		variationByID[v.ID] = v
	}
	for _, line := range req.OrderItems {
		if _, found := variationByID[line.ProductVariationID]; !found {
			respondStoreError(c, store.ErrValidation(
				"ProductVariation with id "+strconv.Itoa(int(line.ProductVariationID))+" does not exist."))
			return
		}
	}

	var order models.Order
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where(models.Customer{UserID: userID}).FirstOrCreate(&customer).Error; err != nil {
			return err
		}

		order = models.Order{
			CustomerID: customer.ID,
			Location:   req.Location,
			Status:     store.StatusWaiting,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range req.OrderItems {
			variation := variationByID[line.ProductVariationID]
			item := models.OrderItem{
				OrderID:  order.ID,
				ItemID:   variation.ID,
				Name:     store.SnapshotName(variation.Product.Name, variation.Name),
				Price:    variation.Price,
				Quantity: line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, item)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", newOrderResponse(order))
}

// GetOrderByID returns the order with its items and computed total. Reads
// are allowed to the owning customer in any order state.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID, _ := currentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.loadOrder(uint(orderID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := store.CanReadOrder(&order, userID); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", newOrderResponse(order))
}

// UpdateOrder lets the owning customer change the location while the order
// waits, or request cancellation subject to the lifecycle rules.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	userID, _ := currentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.loadOrder(uint(orderID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := store.CanReadOrder(&order, userID); err != nil {
		respondStoreError(c, err)
		return
	}

	var req struct {
		Location *string `json:"location"`
		Canceled *bool   `json:"canceled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	patch := store.OrderPatch{Location: req.Location, Canceled: req.Canceled}
	if err := store.ValidateOrderPatch(&order, patch); err != nil {
		respondStoreError(c, err)
		return
	}

	if req.Location != nil {
		order.Location = *req.Location
	}
	if req.Canceled != nil {
		order.Canceled = *req.Canceled
	}

	if err := oc.DB.Omit(clause.Associations).Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", newOrderResponse(order))
}
