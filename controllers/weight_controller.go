package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivamau/diet-tracker/services"
)

type WeightController struct {
	weights *services.WeightService
}

func NewWeightController(weights *services.WeightService) *WeightController {
	return &WeightController{weights: weights}
}

// GET /api/user/weight
func (wc *WeightController) List(c *gin.Context) {
	entries, err := wc.weights.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// POST /api/user/weight
func (wc *WeightController) Upsert(c *gin.Context) {
	var in services.WeightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and weight are required"})
		return
	}
	entry, err := wc.weights.Upsert(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /api/user/weight/:date
func (wc *WeightController) Delete(c *gin.Context) {
	if err := wc.weights.Delete(c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight entry deleted successfully"})
}

// GET /api/user/weight/stats
func (wc *WeightController) Stats(c *gin.Context) {
	stats, err := wc.weights.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
