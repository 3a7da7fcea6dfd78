package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database, isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Customer{},
		&models.Product{}, &models.ProductVariation{},
		&models.Order{}, &models.OrderItem{}, &models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// authAs stands in for AuthMiddleware, injecting the identity a parsed
// token would have provided.
func authAs(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func performJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// assertDecimal compares a decimal JSON string numerically, so "20", "20.0"
// and "20.00" all match.
func assertDecimal(t *testing.T, expected string, got interface{}) {
	t.Helper()
	s, ok := got.(string)
	if !assert.True(t, ok, "expected decimal string, got %T (%v)", got, got) {
		return
	}
	value, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString(expected).Equal(value),
		"expected %s, got %s", expected, s)
}

// seedUser creates a user row directly; the register endpoint is exercised
// in its own tests.
func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Name: email, Email: email, Password: "hashed", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedProductWithVariation(t *testing.T, db *gorm.DB, name, variationName, price string) (models.Product, models.ProductVariation) {
	t.Helper()
	product := models.Product{Name: name, Active: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	variation := models.ProductVariation{
		ProductID: product.ID,
		Name:      variationName,
		Price:     decimal.RequireFromString(price),
		Active:    true,
	}
	if err := db.Create(&variation).Error; err != nil {
		t.Fatalf("failed to seed variation: %v", err)
	}
	return product, variation
}
