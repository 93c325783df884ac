package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerProfile is a per-customer rollup derived from orders.
//
// It is rebuilt from scratch on every aggregation pass and never persisted.
// Phone is the normalized grouping key (lowercased, trimmed); TotalSpent is
// the customer's lifetime value across all their orders.

type CustomerProfile struct {
	Phone       string          `json:"phone"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	FirstVisit  time.Time       `json:"first_visit"`
	LastVisit   time.Time       `json:"last_visit"`
}
