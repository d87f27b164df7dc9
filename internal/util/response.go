package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response holds the top-level fields of a successful reply in addition
// to "success": typically "data", plus "count"/"total"/"pagination" on
// list endpoints.
type Response map[string]interface{}

// Success writes a uniform success envelope.
func Success(c *gin.Context, status int, body Response) {
	out := gin.H{"success": true}
	for k, v := range body {
		out[k] = v
	}
	c.JSON(status, out)
}

// Error writes a uniform error envelope.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": msg,
	})
}

// Invalid writes a validation failure with per-field messages.
func Invalid(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
