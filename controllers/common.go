// file: controllers/common.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/services"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

// respondError maps expected service rejections to their reason code and
// 4xx status; anything else is infrastructural and opaque to the client.
func respondError(c *gin.Context, err error) {
	var se *services.ServiceError
	if errors.As(err, &se) {
		utils.Fail(c, se.Status, se.Reason, se.Message)
		return
	}
	utils.Fail(c, http.StatusInternalServerError, "internal_error", "Unexpected server error")
}
