package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-app/controllers"
	"github.com/yeremiapane/store-app/models"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	userCtrl := controllers.NewUserController(db)
	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w := performJSON(t, r, "POST", "/register", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	w = performJSON(t, r, "POST", "/login", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, models.RoleCustomer, data["user_role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	payload := map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}
	w := performJSON(t, r, "POST", "/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, r, "POST", "/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "email")
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w := performJSON(t, r, "POST", "/register", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, r, "POST", "/login", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
