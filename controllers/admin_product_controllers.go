package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/store"
	"github.com/yeremiapane/store-app/utils"
)

type AdminProductController struct {
	DB *gorm.DB
}

func NewAdminProductController(db *gorm.DB) *AdminProductController {
	return &AdminProductController{DB: db}
}

type variationUpsert struct {
	ID     *uint            `json:"id"`
	Name   *string          `json:"name"`
	Price  *decimal.Decimal `json:"price"`
	Active *bool            `json:"active"`
}

func (v variationUpsert) validate() error {
	if v.Price != nil && v.Price.IsNegative() {
		return store.ErrFieldValidation("price", "Ensure this value is greater than or equal to 0.")
	}
	return nil
}

// GetAllProducts lists the whole catalog, active or not.
func (apc *AdminProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := apc.DB.Preload("Variations").Order("created_at").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// CreateProduct creates a product with its variations atomically. A product
// created without variations gets the inactive zero-price placeholder, so
// every product stays orderable through a variation reference.
func (apc *AdminProductController) CreateProduct(c *gin.Context) {
	type request struct {
		Name       string            `json:"name" binding:"required"`
		Active     *bool             `json:"active"`
		Variations []variationUpsert `json:"variations"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, v := range req.Variations {
		if err := v.validate(); err != nil {
			respondStoreError(c, err)
			return
		}
		if v.Name == nil || *v.Name == "" {
			respondStoreError(c, store.ErrFieldValidation("name", "This field is required."))
			return
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var product models.Product
	err := apc.DB.Transaction(func(tx *gorm.DB) error {
		product = models.Product{Name: req.Name, Active: active}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		if len(req.Variations) == 0 {
			placeholder := models.ProductVariation{
				ProductID: product.ID,
				Name:      models.PlaceholderVariationName,
				Price:     decimal.Zero,
				Active:    false,
			}
			if err := tx.Create(&placeholder).Error; err != nil {
				return err
			}
			product.Variations = []models.ProductVariation{placeholder}
			return nil
		}

		for _, v := range req.Variations {
			variation := models.ProductVariation{
				ProductID: product.ID,
				Name:      *v.Name,
				Price:     decimal.Zero,
				Active:    true,
			}
			if v.Price != nil {
				variation.Price = *v.Price
			}
			if v.Active != nil {
				variation.Active = *v.Active
			}
			if err := tx.Create(&variation).Error; err != nil {
				return err
			}
			product.Variations = append(product.Variations, variation)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct patches product fields and upserts variations: entries with
// an id update that variation in place, entries without an id create new
// ones. Unknown variation ids are skipped silently; that leniency is part of
// the endpoint's contract.
func (apc *AdminProductController) UpdateProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	err := apc.DB.Preload("Variations").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondStoreError(c, store.ErrNotFound())
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type request struct {
		Name       *string           `json:"name"`
		Active     *bool             `json:"active"`
		Variations []variationUpsert `json:"variations"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, v := range req.Variations {
		if err := v.validate(); err != nil {
			respondStoreError(c, err)
			return
		}
	}

	err = apc.DB.Transaction(func(tx *gorm.DB) error {
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Active != nil {
			product.Active = *req.Active
		}
		if err := tx.Omit("Variations").Save(&product).Error; err != nil {
			return err
		}

		for _, v := range req.Variations {
			if v.ID != nil {
				var variation models.ProductVariation
				err := tx.Where("id = ? AND product_id = ?", *v.ID, product.ID).First(&variation).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				if v.Name != nil {
					variation.Name = *v.Name
				}
				if v.Price != nil {
					variation.Price = *v.Price
				}
				if v.Active != nil {
					variation.Active = *v.Active
				}
				if err := tx.Save(&variation).Error; err != nil {
					return err
				}
				continue
			}

			variation := models.ProductVariation{
				ProductID: product.ID,
				Price:     decimal.Zero,
				Active:    true,
			}
			if v.Name != nil {
				variation.Name = *v.Name
			}
			if v.Price != nil {
				variation.Price = *v.Price
			}
			if v.Active != nil {
				variation.Active = *v.Active
			}
			if err := tx.Create(&variation).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Reload so the response reflects the upserted variations.
	if err := apc.DB.Preload("Variations").First(&product, product.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct removes the product and all of its variations. Active
// variations do not block deletion; historical order items keep their
// snapshots either way.
func (apc *AdminProductController) DeleteProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	err := apc.DB.First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondStoreError(c, store.ErrNotFound())
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err = apc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVariation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": product.ID})
}

// DeleteVariation removes one variation, scoped by both ids: the pair must
// resolve to the same row or the variation does not exist for this product.
func (apc *AdminProductController) DeleteVariation(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("product_id"))
	variationID, _ := strconv.Atoi(c.Param("variation_id"))

	var variation models.ProductVariation
	err := apc.DB.Where("id = ? AND product_id = ?", variationID, productID).First(&variation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondStoreError(c, store.ErrNotFound())
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := apc.DB.Delete(&variation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Variation deleted", gin.H{"variation_id": variation.ID})
}
