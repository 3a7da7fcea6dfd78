package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondDetail emits the {"detail": ...} body used for not-found and
// permission failures.
func RespondDetail(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// RespondFieldErrors emits field-scoped validation messages:
// {"<field>": ["<message>", ...]}.
func RespondFieldErrors(c *gin.Context, code int, field string, messages []string) {
	c.JSON(code, gin.H{field: messages})
}

// RespondNonFieldErrors emits cross-field validation messages under
// non_field_errors.
func RespondNonFieldErrors(c *gin.Context, code int, messages []string) {
	c.JSON(code, gin.H{"non_field_errors": messages})
}
