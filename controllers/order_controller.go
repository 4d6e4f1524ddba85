package controllers

import (
	"errors"
	"log"
	"net/http"

	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /api/orders
//
// Registered for every method: anything but POST is rejected here, before
// the body is read or a transaction opened.
func (ctl *OrderController) Place(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		resp.MethodNotAllowed(c, "Only POST requests are accepted")
		return
	}

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing required data")
		return
	}

	out, err := ctl.Service.PlaceOrder(&req)
	if errors.Is(err, services.ErrMissingData) {
		resp.BadRequest(c, "Missing required data")
		return
	}
	if err != nil {
		// keep the cause in the log, never on the wire
		log.Printf("order processing failed (request %v): %v", c.GetString("requestId"), err)
		resp.ServerError(c, "Order processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Order placed successfully",
		"order_id":    out.OrderID,
		"order_total": out.Total,
	})
}
