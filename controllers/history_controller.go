// file: controllers/history_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/middlewares"
	"github.com/Th3Mauryy/RefZone-sub000/services"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

// GetHistory lists the caller's archived matches, optionally filtered by
// ?month= and ?year= for reporting windows.
func GetHistory(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	entries, err := services.ListHistory(middlewares.CallerID(c), month, year)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "success", entries)
}

// TriggerSweep runs the archival sweep on demand. Safe to call however
// often: matches not yet finished are simply skipped.
func TriggerSweep(c *gin.Context) {
	archived := services.RunSweep(time.Now())
	utils.Success(c, "Sweep completed", gin.H{"archived": archived})
}
