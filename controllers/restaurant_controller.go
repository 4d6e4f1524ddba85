package controllers

import (
	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.CatalogService
}

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// GET /api/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rows, err := ctl.Service.ListRestaurants()
	if err != nil {
		resp.ServerError(c, "Failed to load restaurants")
		return
	}
	if len(rows) == 0 {
		resp.Message(c, "No restaurants found")
		return
	}
	resp.OK(c, rows)
}
