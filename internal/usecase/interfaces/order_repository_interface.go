package interfaces

import (
	"context"

	"restauplus/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The analytics service must be able to:
//   - store an order at checkout (line items travel with the order)
//   - resolve a single order for detail views and receipts
//   - fetch every order of a tenant for aggregation passes
//   - apply staff status transitions by order ID
//
// Reads return a zero-value Order (empty ID) when nothing matches; callers
// decide whether that is a not-found error or an empty dataset.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Order, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
