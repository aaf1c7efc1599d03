package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivamau/diet-tracker/services"
)

type MealController struct {
	meals     *services.MealService
	nutrition *services.NutritionService
}

func NewMealController(meals *services.MealService, nutrition *services.NutritionService) *MealController {
	return &MealController{meals: meals, nutrition: nutrition}
}

// GET /api/meals/:date
func (mc *MealController) GetDailyLog(c *gin.Context) {
	log, err := mc.meals.GetDailyLog(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// GET /api/meals/:date/summary
func (mc *MealController) GetDailySummary(c *gin.Context) {
	summary, err := mc.nutrition.Summary(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// POST /api/meals/:date/:mealType
func (mc *MealController) AddEntry(c *gin.Context) {
	var in services.AddEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodItemId is required"})
		return
	}
	entry, err := mc.meals.AddEntry(c.Param("date"), c.Param("mealType"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /api/meals/:date/:mealType/copy
func (mc *MealController) CopyMeal(c *gin.Context) {
	var in services.CopyMealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceDate and sourceMealType are required"})
		return
	}
	copied, err := mc.meals.CopyMeal(c.Param("date"), c.Param("mealType"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"copied": len(copied), "entries": copied})
}

// DELETE /api/meals/:date/:mealType/:entryId
func (mc *MealController) RemoveEntry(c *gin.Context) {
	err := mc.meals.RemoveEntry(c.Param("date"), c.Param("mealType"), c.Param("entryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item removed from meal"})
}

// GET /api/meals/export
func (mc *MealController) ExportDiary(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="food_diary_export.csv"`)
	if err := mc.meals.ExportDiary(c.Writer); err != nil {
		respondError(c, err)
	}
}
