package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
	"github.com/yeremiapane/store-app/utils"
)

// respondStoreError maps the store error taxonomy onto HTTP:
// NotFound -> 404 {"detail"}, Forbidden -> 403 {"detail"},
// Validation -> 400 with field-scoped or non_field_errors body.
// Anything else is a plain 500.
func respondStoreError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		utils.RespondDetail(c, http.StatusNotFound, notFound.Detail)
		return
	}

	var forbidden *store.ForbiddenError
	if errors.As(err, &forbidden) {
		utils.RespondDetail(c, http.StatusForbidden, forbidden.Detail)
		return
	}

	var validation *store.ValidationError
	if errors.As(err, &validation) {
		if validation.Field != "" {
			utils.RespondFieldErrors(c, http.StatusBadRequest, validation.Field, validation.Messages)
			return
		}
		utils.RespondNonFieldErrors(c, http.StatusBadRequest, validation.Messages)
		return
	}

	utils.RespondError(c, http.StatusInternalServerError, err)
}

// currentUserID reads the authenticated user id set by AuthMiddleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

type orderItemResponse struct {
	ID        uint            `json:"id"`
	ItemID    uint            `json:"item_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type orderResponse struct {
	ID         uint                `json:"id"`
	Location   string              `json:"location"`
	Status     string              `json:"status"`
	Canceled   bool                `json:"canceled"`
	OrderItems []orderItemResponse `json:"order_items"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// newOrderResponse serializes an order with its items and the total derived
// from them. The total is never persisted.
func newOrderResponse(order models.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, orderItemResponse{
			ID:        item.ID,
			ItemID:    item.ItemID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}

	return orderResponse{
		ID:         order.ID,
		Location:   order.Location,
		Status:     order.Status,
		Canceled:   order.Canceled,
		OrderItems: items,
		TotalPrice: store.ComputeTotal(order.OrderItems),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}
