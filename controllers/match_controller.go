// file: controllers/match_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/dto"
	"github.com/Th3Mauryy/RefZone-sub000/mappers"
	"github.com/Th3Mauryy/RefZone-sub000/middlewares"
	"github.com/Th3Mauryy/RefZone-sub000/services"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

func matchID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid match id")
		return 0, false
	}
	return uint32(id), true
}

func ListMatches(c *gin.Context) {
	matches, err := services.ListMatches()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "success", mappers.MapMatchListToResp(matches))
}

func GetMatchDetail(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	m, err := services.GetMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "success", mappers.MapMatchToResp(*m))
}

func CreateMatch(c *gin.Context) {
	var req dto.CreateMatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}

	m, err := services.CreateMatch(middlewares.CallerID(c), services.CreateMatchInput{
		Name:     req.Name,
		Location: req.Location,
		Date:     req.Date,
		Time:     req.Time,
		VenueID:  req.VenueID,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Match created", mappers.MapMatchToResp(*m))
}

func UpdateMatch(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	var req dto.UpdateMatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}

	m, err := services.UpdateMatch(middlewares.CallerID(c), id, services.UpdateMatchInput{
		Name:     req.Name,
		Location: req.Location,
		Date:     req.Date,
		Time:     req.Time,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Match updated", mappers.MapMatchToResp(*m))
}

func DeleteMatch(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	if err := services.DeleteMatch(middlewares.CallerID(c), id, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Match cancelled and archived", nil)
}

// ApplyToMatch is the referee-side postulation endpoint.
func ApplyToMatch(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	if err := services.Apply(id, middlewares.CallerID(c), time.Now()); err != nil {
		respondError(c, err)
		return
	}
	m, err := services.GetMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Application recorded", mappers.MapMatchToResp(*m))
}

func AssignReferee(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	var req dto.AssignRefereeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}
	if err := services.AssignReferee(middlewares.CallerID(c), id, req.RefereeID, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	m, err := services.GetMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Referee assigned", mappers.MapMatchToResp(*m))
}

func SubstituteReferee(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	var req dto.AssignRefereeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}
	if err := services.SubstituteReferee(middlewares.CallerID(c), id, req.RefereeID, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	m, err := services.GetMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Referee substituted", mappers.MapMatchToResp(*m))
}

func UnassignReferee(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	if err := services.UnassignReferee(middlewares.CallerID(c), id, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	m, err := services.GetMatch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Referee unassigned", mappers.MapMatchToResp(*m))
}
