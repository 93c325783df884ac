package entities

import "github.com/shopspring/decimal"

// MenuItem is the live menu entry for a restaurant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (restaurant_id-index): restaurant_id
//
// Price here is the current price; line items snapshot their own price at
// order time, so menu edits never rewrite history.

type MenuItem struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
}
