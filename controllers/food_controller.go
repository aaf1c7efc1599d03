package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivamau/diet-tracker/services"
)

type FoodController struct {
	foods    *services.FoodService
	resolver *services.BarcodeResolver
}

func NewFoodController(foods *services.FoodService, resolver *services.BarcodeResolver) *FoodController {
	return &FoodController{foods: foods, resolver: resolver}
}

// GET /api/food-items
func (fc *FoodController) List(c *gin.Context) {
	items, err := fc.foods.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/food-items/:id
func (fc *FoodController) Get(c *gin.Context) {
	item, err := fc.foods.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/food-items
func (fc *FoodController) Create(c *gin.Context) {
	var in services.FoodItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and calories are required"})
		return
	}
	item, err := fc.foods.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /api/food-items/:id
func (fc *FoodController) Update(c *gin.Context) {
	var in services.FoodItemUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item, err := fc.foods.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/food-items/:id
func (fc *FoodController) Delete(c *gin.Context) {
	if err := fc.foods.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}

// GET /api/food-items/search/:query
func (fc *FoodController) Search(c *gin.Context) {
	items, err := fc.foods.SearchByName(c.Param("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/food-items/barcode/:barcode
func (fc *FoodController) GetByBarcode(c *gin.Context) {
	item, err := fc.foods.GetByBarcode(c.Param("barcode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /api/food-items/resolve/:barcode
//
// Runs the full resolution flow: local lookup first, OpenFoodFacts on a
// local miss, auto-creating the item on a remote hit.
func (fc *FoodController) ResolveBarcode(c *gin.Context) {
	result, err := fc.resolver.Resolve(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if result.State == services.StateAutoCreated {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}
