package entities

import "time"

// Restaurant is the tenant record. Only the metadata rendered on receipts
// lives here; account/billing state belongs to the platform service.
//
// Storage model (DynamoDB):
//   - PK: id

type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
