package routes

import (
	"foodorder/controllers"
	"foodorder/middlewares"
	"foodorder/repository"
	"foodorder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestIDMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	catalogSvc := services.NewCatalogService(repository.NewCatalogRepository(db))
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db))

	// Controllers
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	foodCtrl := controllers.NewFoodController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	api := r.Group("/api")
	{
		api.GET("/restaurants", restCtrl.List)
		api.GET("/food", foodCtrl.List)

		// Any: the controller itself answers non-POST with a JSON error
		api.Any("/orders", orderCtrl.Place)
	}
}
