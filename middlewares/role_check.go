package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/store-app/models"
	"github.com/yeremiapane/store-app/utils"
)

// AdminOnly guards the administrative route group. It expects AuthMiddleware
// to have stored the caller's role in the context.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondDetail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			utils.RespondDetail(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
