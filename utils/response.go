// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Success writes the standard success envelope with the updated resource.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "data": data})
}

// Fail writes the structured error body every rejected mutation returns:
// a human message plus a machine-readable reason code.
func Fail(c *gin.Context, status int, reason, message string) {
	c.JSON(status, gin.H{"message": message, "error": reason})
}
