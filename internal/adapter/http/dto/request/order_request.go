package request

import (
	"strings"

	"restauplus/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type OrderLineItemRequest struct {
	MenuItemID  string          `json:"menu_item_id" binding:"required"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity" binding:"required"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
	Notes       string          `json:"notes"`
}

// CreateOrderRequest is the checkout-facing payload. Notes travel as the raw
// string exactly as the storefront sent them; the notes parser deals with
// legacy plain text on the way out, not on the way in.
type CreateOrderRequest struct {
	RestaurantID  string                 `json:"restaurant_id" binding:"required"`
	CustomerPhone string                 `json:"customer_phone"`
	OrderType     string                 `json:"order_type"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	Items         []OrderLineItemRequest `json:"items" binding:"required"`
}

func (r CreateOrderRequest) ToOrder() entities.Order {
	items := make([]entities.OrderLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderLineItem{
			MenuItemID:  strings.TrimSpace(it.MenuItemID),
			Name:        strings.TrimSpace(it.Name),
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime,
			Notes:       it.Notes,
		})
	}
	return entities.Order{
		RestaurantID:  strings.TrimSpace(r.RestaurantID),
		CustomerPhone: r.CustomerPhone,
		OrderType:     entities.OrderType(strings.TrimSpace(r.OrderType)),
		TotalAmount:   r.TotalAmount,
		Items:         items,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
