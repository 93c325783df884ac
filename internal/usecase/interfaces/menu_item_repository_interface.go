package interfaces

import (
	"context"

	"restauplus/internal/domain/entities"
)

// IMenuItemRepository abstracts DynamoDB persistence for MenuItem.
//
// Receipts only need the whole menu of one restaurant to resolve display
// names and fall back to live prices when a line item has no snapshot.

type IMenuItemRepository interface {
	ListByRestaurantID(ctx context.Context, restaurantID string) ([]entities.MenuItem, error)
}
