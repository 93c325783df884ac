package request

import (
	"testing"

	"restauplus/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCreateOrderRequest_ToOrder(t *testing.T) {
	r := CreateOrderRequest{
		RestaurantID:  " r-1 ",
		CustomerPhone: "+974111",
		OrderType:     " takeaway ",
		TotalAmount:   decimal.RequireFromString("21.50"),
		Items: []OrderLineItemRequest{
			{MenuItemID: " m-1 ", Name: " Karak Tea ", Quantity: 2, PriceAtTime: decimal.RequireFromString("3.50"), Notes: "extra karak"},
		},
	}

	order := r.ToOrder()
	if order.RestaurantID != "r-1" {
		t.Fatalf("expected trimmed restaurant id, got %q", order.RestaurantID)
	}
	if order.OrderType != entities.OrderTypeTakeaway {
		t.Fatalf("expected takeaway, got %q", order.OrderType)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	if order.Items[0].MenuItemID != "m-1" || order.Items[0].Name != "Karak Tea" {
		t.Fatalf("expected trimmed item fields, got %+v", order.Items[0])
	}
	if order.Items[0].Notes != "extra karak" {
		t.Fatalf("notes must pass through untouched, got %q", order.Items[0].Notes)
	}
}

func TestUpdateOrderStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateOrderStatusRequest{Status: " Served "}
	if got := r.ResolveStatus(); got != entities.OrderStatusServed {
		t.Fatalf("expected served, got %q", got)
	}

	r2 := UpdateOrderStatusRequest{Status: "COMPLETED"}
	if got := r2.ResolveStatus(); got != entities.OrderStatusCompleted {
		t.Fatalf("expected completed, got %q", got)
	}
}
