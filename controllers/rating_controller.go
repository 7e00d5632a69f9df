// file: controllers/rating_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/dto"
	"github.com/Th3Mauryy/RefZone-sub000/middlewares"
	"github.com/Th3Mauryy/RefZone-sub000/services"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

func RateReferee(c *gin.Context) {
	var req dto.RateRefereeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}

	rating, err := services.RateReferee(middlewares.CallerID(c), services.RateInput{
		HistoryEntryID: req.HistoryEntryID,
		RefereeID:      req.RefereeID,
		Stars:          req.Stars,
		Comment:        req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Rating recorded", rating)
}

// GetPendingRatings lists the archived matches still awaiting a rating
// from the calling organizer.
func GetPendingRatings(c *gin.Context) {
	entries, err := services.PendingRatings(middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "success", entries)
}

// GetRefereeRatings exposes one referee's rating history.
func GetRefereeRatings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid referee id")
		return
	}
	ratings, err := services.RefereeRatings(uint32(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "success", ratings)
}
