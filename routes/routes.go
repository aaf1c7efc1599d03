package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vivamau/diet-tracker/config"
	"github.com/vivamau/diet-tracker/controllers"
	"github.com/vivamau/diet-tracker/middlewares"
	"github.com/vivamau/diet-tracker/services"
	"github.com/vivamau/diet-tracker/store"
)

// SetupRouter wires services and controllers around the injected store and
// returns the configured engine.
func SetupRouter(st *store.Store, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.CORS(), middlewares.Metrics())

	foodSvc := services.NewFoodService(st)
	offSvc := services.NewOpenFoodFactsService(cfg.OpenFoodFactsURL)
	resolver := services.NewBarcodeResolver(foodSvc, offSvc)
	mealSvc := services.NewMealService(st)
	nutritionSvc := services.NewNutritionService(st)
	userSvc := services.NewUserService(st)
	weightSvc := services.NewWeightService(st)

	fc := controllers.NewFoodController(foodSvc, resolver)
	mc := controllers.NewMealController(mealSvc, nutritionSvc)
	uc := controllers.NewUserController(userSvc)
	wc := controllers.NewWeightController(weightSvc)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		meals := api.Group("/meals")
		{
			meals.GET("/export", mc.ExportDiary)
			meals.GET("/:date", mc.GetDailyLog)
			meals.GET("/:date/summary", mc.GetDailySummary)
			meals.POST("/:date/:mealType", mc.AddEntry)
			meals.POST("/:date/:mealType/copy", mc.CopyMeal)
			meals.DELETE("/:date/:mealType/:entryId", mc.RemoveEntry)
		}

		foods := api.Group("/food-items")
		{
			foods.GET("", fc.List)
			foods.POST("", fc.Create)
			foods.GET("/search/:query", fc.Search)
			foods.GET("/barcode/:barcode", fc.GetByBarcode)
			foods.GET("/resolve/:barcode", fc.ResolveBarcode)
			foods.GET("/:id", fc.Get)
			foods.PUT("/:id", fc.Update)
			foods.DELETE("/:id", fc.Delete)
		}

		user := api.Group("/user")
		{
			user.GET("/profile", uc.GetProfile)
			user.PUT("/profile", uc.UpdateProfile)
			user.GET("/weight", wc.List)
			user.GET("/weight/stats", wc.Stats)
			user.POST("/weight", wc.Upsert)
			user.DELETE("/weight/:date", wc.Delete)
		}
	}

	return r
}
