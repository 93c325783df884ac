package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of lifecycle states an order moves through.
//
// Staff dashboards drive the transitions; this service validates that only
// known statuses are ever stored. "Counts as fulfilled" is defined once, in
// IsFulfilled, so reporting code never compares raw strings.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed,
		OrderStatusPaid, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsFulfilled reports whether the order reached a completed service state.
// Prep-time estimation only considers fulfilled orders.
func (s OrderStatus) IsFulfilled() bool {
	switch s {
	case OrderStatusServed, OrderStatusPaid, OrderStatusCompleted:
		return true
	}
	return false
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

// Order is the order record persisted by the analytics service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (restaurant_id-index): restaurant_id
//
// CustomerPhone is free text straight from checkout. It may be empty or a
// placeholder; customer aggregation normalizes and filters it, nothing else
// reformats it.

type Order struct {
	ID            string          `json:"id"`
	RestaurantID  string          `json:"restaurant_id"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Status        OrderStatus     `json:"status"`
	OrderType     OrderType       `json:"order_type"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []OrderLineItem `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderLineItem is the per-item snapshot taken at checkout. Name and
// PriceAtTime freeze what the customer actually saw; receipts fall back to
// the live menu item only when the snapshot is missing.
type OrderLineItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	MenuItemID  string          `json:"menu_item_id"`
	Name        string          `json:"name,omitempty"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
	Notes       string          `json:"notes,omitempty"`
}
