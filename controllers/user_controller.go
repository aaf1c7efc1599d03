package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivamau/diet-tracker/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /api/user/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	profile, err := uc.users.GetProfile()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /api/user/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	profile, err := uc.users.UpdateProfile(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
