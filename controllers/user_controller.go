// file: controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/models"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

func Register(c *gin.Context) {
	var req struct {
		Username  string `json:"username" binding:"required"`
		Password  string `json:"password" binding:"required,min=8"`
		Email     string `json:"email" binding:"required,email"`
		Role      string `json:"role" binding:"required,oneof=organizer referee"`
		VenueName string `json:"venue_name"` // organizers register their field
		Address   string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		utils.Fail(c, http.StatusConflict, "user_exists", "Username or email already registered")
		return
	}

	if req.Role == string(models.RoleOrganizer) && req.VenueName == "" {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Organizers must register a venue name")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     models.UserRole(req.Role),
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "internal_error", "Database error")
		return
	}

	if newUser.Role == models.RoleOrganizer {
		venue := models.Venue{Name: req.VenueName, Address: req.Address, OwnerID: newUser.ID}
		if err := database.DB.Create(&venue).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "internal_error", "Database error")
			return
		}
	}

	utils.Created(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid_request", "Invalid payload: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Fail(c, http.StatusUnauthorized, "invalid_credentials", "Wrong email or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Fail(c, http.StatusUnauthorized, "invalid_credentials", "Wrong email or password")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "internal_error", "Could not issue token")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
