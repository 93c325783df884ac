package interfaces

import (
	"context"

	"restauplus/internal/domain/entities"
)

// IRestaurantRepository resolves tenant metadata for receipt rendering.
type IRestaurantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Restaurant, error)
}
