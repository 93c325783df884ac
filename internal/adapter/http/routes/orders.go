package routes

import (
	"restauplus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders           = "/orders"
	PathRestaurantOrders = "/restaurants/:restaurant_id/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, receiptHandler *handlers.ReceiptHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
		orders.GET("/:order_id/receipt", receiptHandler.GetReceipt)
	}

	rg.GET(PathRestaurantOrders, orderHandler.ListOrders)
}
