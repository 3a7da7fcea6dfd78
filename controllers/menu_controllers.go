package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuVariation struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type menuProduct struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Variations []menuVariation `json:"variations"`
}

// GetMenu lists active products with their active variations, in creation
// order. Inactive variations of an active product are filtered out; a
// product whose variations are all inactive still shows with an empty list.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var products []models.Product
	err := mc.DB.
		Where("active = ?", true).
		Preload("Variations", "active = ?", true).
		Order("created_at").
		Find(&products).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	menu := make([]menuProduct, 0, len(products))
	for _, product := range products {
		variations := make([]menuVariation, 0, len(product.Variations))
		for _, v := range product.Variations {
			variations = append(variations, menuVariation{
				ID:    v.ID,
				Name:  v.Name,
				Price: v.Price,
			})
		}
		menu = append(menu, menuProduct{
			ID:         product.ID,
			Name:       product.Name,
			Variations: variations,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Menu", menu)
}
