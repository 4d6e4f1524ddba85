package controllers

import (
	"errors"
	"strconv"

	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Service *services.CatalogService
}

func NewFoodController(s *services.CatalogService) *FoodController {
	return &FoodController{Service: s}
}

// GET /api/food?action=all|restaurant|item&id=N
//
// One endpoint fanning out on ?action, so the three catalog reads share a
// URL the way the frontend expects.
func (ctl *FoodController) List(c *gin.Context) {
	action := c.DefaultQuery("action", "all")

	switch action {
	case "all":
		ctl.listAll(c)
	case "restaurant":
		ctl.listByRestaurant(c)
	case "item":
		ctl.getItem(c)
	default:
		resp.BadRequest(c, "Invalid action")
	}
}

func (ctl *FoodController) listAll(c *gin.Context) {
	rows, err := ctl.Service.ListFoods()
	if err != nil {
		resp.ServerError(c, "Failed to load food items")
		return
	}
	if len(rows) == 0 {
		resp.Message(c, "No food items found")
		return
	}
	resp.OK(c, rows)
}

func (ctl *FoodController) listByRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "Invalid restaurant ID")
		return
	}

	rows, err := ctl.Service.ListFoodsByRestaurant(uint(id))
	if err != nil {
		resp.ServerError(c, "Failed to load food items")
		return
	}
	if len(rows) == 0 {
		resp.Message(c, "No food items found for this restaurant")
		return
	}
	resp.OK(c, rows)
}

func (ctl *FoodController) getItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "Invalid food ID")
		return
	}

	row, err := ctl.Service.GetFood(uint(id))
	if errors.Is(err, services.ErrFoodNotFound) {
		resp.NotFound(c, "Food item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, "Failed to load food item")
		return
	}
	resp.OK(c, row)
}
