package response

import (
	"time"

	"restauplus/internal/domain/entities"
)

type OrderLineItemResponse struct {
	ID          string                      `json:"id"`
	MenuItemID  string                      `json:"menu_item_id"`
	Name        string                      `json:"name,omitempty"`
	Quantity    int                         `json:"quantity"`
	PriceAtTime string                      `json:"price_at_time"`
	Note        string                      `json:"note,omitempty"`
	Variants    []entities.VariantSelection `json:"variants,omitempty"`
}

type OrderResponse struct {
	ID            string                  `json:"id"`
	RestaurantID  string                  `json:"restaurant_id"`
	CustomerPhone string                  `json:"customer_phone,omitempty"`
	Status        string                  `json:"status"`
	OrderType     string                  `json:"order_type"`
	TotalAmount   string                  `json:"total_amount"`
	Items         []OrderLineItemResponse `json:"items"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// FromOrder decodes each line item's notes on the way out so API consumers
// never see the raw note payload format.
func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		notes := entities.ParseLineItemNotes(it.Notes)
		items = append(items, OrderLineItemResponse{
			ID:          it.ID,
			MenuItemID:  it.MenuItemID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime.StringFixed(2),
			Note:        notes.Note,
			Variants:    notes.Variants,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		CustomerPhone: o.CustomerPhone,
		Status:        string(o.Status),
		OrderType:     string(o.OrderType),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
