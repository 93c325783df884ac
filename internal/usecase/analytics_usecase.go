package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRestaurantID = errors.New("invalid restaurant_id")
	ErrInvalidGranularity  = errors.New("invalid bucket granularity")
	ErrInvalidMonth        = errors.New("invalid calendar month")
)

// Checkout flows without a customer record store this literal instead of a
// phone number. Such orders never contribute to customer rollups.
const guestPlaceholder = "unknown guest"

// Orders closed more than a day after creation are stale rows that were
// never properly transitioned, not real fulfillment times.
const maxPrepMinutes = 1440

type BucketGranularity string

const (
	BucketDay   BucketGranularity = "day"
	BucketWeek  BucketGranularity = "week"
	BucketMonth BucketGranularity = "month"
	BucketYear  BucketGranularity = "year"
)

func (g BucketGranularity) Valid() bool {
	switch g {
	case BucketDay, BucketWeek, BucketMonth, BucketYear:
		return true
	}
	return false
}

// RevenueBucket is one calendar interval of the leaderboard.
type RevenueBucket struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Leaderboard holds chronologically ordered revenue buckets plus the
// percent delta between the last bucket and the one before it.
type Leaderboard struct {
	Granularity   BucketGranularity `json:"granularity"`
	Buckets       []RevenueBucket   `json:"buckets"`
	GrowthPercent float64           `json:"growth_percent"`
}

// CalendarDay is one cell of the monthly heatmap. Days without orders are
// present with zero profit; they are not the same as the leading blanks.
type CalendarDay struct {
	Day    int             `json:"day"`
	Date   string          `json:"date"`
	Profit decimal.Decimal `json:"profit"`
	Count  int             `json:"count"`
}

// Calendar is the complete grid for one month. LeadingBlanks is the number
// of empty placeholder cells before day 1 (Sunday-based week start); the
// heatmap needs it to align the first row.
type Calendar struct {
	Month         string        `json:"month"`
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}

// IAnalyticsUseCase exposes the owner-dashboard aggregation operations.
//
// All of them recompute from the full order list of the tenant on every
// call; there is no incremental path. An order fetch failure is logged and
// served as an empty dataset so the dashboard degrades to zeros instead of
// erroring (partial data beats a blank page).

type IAnalyticsUseCase interface {
	CustomerProfiles(ctx context.Context, restaurantID string) ([]entities.CustomerProfile, error)
	AveragePrepMinutes(ctx context.Context, restaurantID string) (int, error)
	RevenueLeaderboard(ctx context.Context, restaurantID string, granularity BucketGranularity) (Leaderboard, error)
	RevenueCalendar(ctx context.Context, restaurantID string, year int, month time.Month) (Calendar, error)
}

type AnalyticsUseCase struct {
	orderRepo interfaces.IOrderRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(orderRepo interfaces.IOrderRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{orderRepo: orderRepo}
}

func (u *AnalyticsUseCase) CustomerProfiles(ctx context.Context, restaurantID string) ([]entities.CustomerProfile, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, ErrInvalidRestaurantID
	}

	orders := u.fetchOrders(ctx, restaurantID)
	profiles := buildCustomerProfiles(orders)

	// Presentation order: biggest spenders first, phone as tie-breaker so
	// the listing is stable across refreshes.
	sort.Slice(profiles, func(i, j int) bool {
		if !profiles[i].TotalSpent.Equal(profiles[j].TotalSpent) {
			return profiles[i].TotalSpent.GreaterThan(profiles[j].TotalSpent)
		}
		return profiles[i].Phone < profiles[j].Phone
	})
	return profiles, nil
}

func (u *AnalyticsUseCase) AveragePrepMinutes(ctx context.Context, restaurantID string) (int, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return 0, ErrInvalidRestaurantID
	}
	return averagePrepMinutes(u.fetchOrders(ctx, restaurantID)), nil
}

func (u *AnalyticsUseCase) RevenueLeaderboard(ctx context.Context, restaurantID string, granularity BucketGranularity) (Leaderboard, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return Leaderboard{}, ErrInvalidRestaurantID
	}
	if !granularity.Valid() {
		return Leaderboard{}, ErrInvalidGranularity
	}

	buckets := buildRevenueBuckets(u.fetchOrders(ctx, restaurantID), granularity)
	return Leaderboard{
		Granularity:   granularity,
		Buckets:       buckets,
		GrowthPercent: growthPercent(buckets),
	}, nil
}

func (u *AnalyticsUseCase) RevenueCalendar(ctx context.Context, restaurantID string, year int, month time.Month) (Calendar, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return Calendar{}, ErrInvalidRestaurantID
	}
	if year < 2000 || year > 2100 || month < time.January || month > time.December {
		return Calendar{}, ErrInvalidMonth
	}
	return buildMonthCalendar(u.fetchOrders(ctx, restaurantID), year, month), nil
}

// fetchOrders resolves the tenant's orders, degrading a storage failure to
// an empty dataset. Aggregating zero orders yields zero-valued results,
// which is what the dashboard should show when the store is unreachable.
func (u *AnalyticsUseCase) fetchOrders(ctx context.Context, restaurantID string) []entities.Order {
	orders, err := u.orderRepo.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		log.Printf("[analytics][usecase] order fetch failed restaurant_id=%s err=%v; serving empty dataset", restaurantID, err)
		return nil
	}
	return orders
}

// normalizePhoneKey lowercases and trims the raw phone string. No E.164
// canonicalization happens; "+974 111" and "+974111" stay distinct keys.
func normalizePhoneKey(phone string) string {
	return strings.ToLower(strings.TrimSpace(phone))
}

// buildCustomerProfiles groups orders by normalized phone key. Orders with
// an empty or placeholder phone are excluded entirely. First/last visit are
// compared by timestamp, so the result is identical for any input order.
func buildCustomerProfiles(orders []entities.Order) []entities.CustomerProfile {
	byKey := make(map[string]*entities.CustomerProfile)

	for _, o := range orders {
		key := normalizePhoneKey(o.CustomerPhone)
		if key == "" || key == guestPlaceholder {
			continue
		}

		p, ok := byKey[key]
		if !ok {
			p = &entities.CustomerProfile{
				Phone:      key,
				TotalSpent: decimal.Zero,
				FirstVisit: o.CreatedAt,
				LastVisit:  o.CreatedAt,
			}
			byKey[key] = p
		}

		p.TotalOrders++
		p.TotalSpent = p.TotalSpent.Add(o.TotalAmount)
		if o.CreatedAt.Before(p.FirstVisit) {
			p.FirstVisit = o.CreatedAt
		}
		if o.CreatedAt.After(p.LastVisit) {
			p.LastVisit = o.CreatedAt
		}
	}

	profiles := make([]entities.CustomerProfile, 0, len(byKey))
	for _, p := range byKey {
		profiles = append(profiles, *p)
	}
	return profiles
}

// averagePrepMinutes is the outlier-filtered mean fulfillment duration.
// Only fulfilled orders count, and only when 0 < duration < 24h; zero and
// negative diffs are clock anomalies, longer ones are stale rows.
func averagePrepMinutes(orders []entities.Order) int {
	var sum float64
	count := 0
	for _, o := range orders {
		if !o.Status.IsFulfilled() {
			continue
		}
		diff := o.UpdatedAt.Sub(o.CreatedAt).Minutes()
		if diff <= 0 || diff >= maxPrepMinutes {
			continue
		}
		sum += diff
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Ceil(sum / float64(count)))
}

func bucketLabel(t time.Time, g BucketGranularity) string {
	t = t.UTC()
	switch g {
	case BucketDay:
		return t.Format("2006-01-02")
	case BucketWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case BucketMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}

// buildRevenueBuckets groups order totals into calendar intervals. Cancelled
// orders never reach the leaderboard. Labels are zero-padded so sorting them
// lexicographically is sorting them chronologically.
func buildRevenueBuckets(orders []entities.Order, g BucketGranularity) []RevenueBucket {
	byLabel := make(map[string]*RevenueBucket)
	for _, o := range orders {
		if o.Status == entities.OrderStatusCancelled {
			continue
		}
		label := bucketLabel(o.CreatedAt, g)
		b, ok := byLabel[label]
		if !ok {
			b = &RevenueBucket{Label: label, Total: decimal.Zero}
			byLabel[label] = b
		}
		b.Total = b.Total.Add(o.TotalAmount)
		b.Count++
	}

	buckets := make([]RevenueBucket, 0, len(byLabel))
	for _, b := range byLabel {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Label < buckets[j].Label })
	return buckets
}

// growthPercent compares the most recent bucket against the prior one. With
// fewer than two buckets, or a zero prior total, there is no meaningful
// baseline and the figure is 0.
func growthPercent(buckets []RevenueBucket) float64 {
	if len(buckets) < 2 {
		return 0
	}
	prev := buckets[len(buckets)-2].Total
	cur := buckets[len(buckets)-1].Total
	if !prev.IsPositive() {
		return 0
	}
	delta, _ := cur.Sub(prev).Div(prev).Float64()
	return delta * 100
}

// buildMonthCalendar produces one cell per calendar day of the month, zero
// profit included, plus the count of leading placeholder cells before day 1.
// Blanks are not zero-value days; the heatmap renders them as empty.
func buildMonthCalendar(orders []entities.Order, year int, month time.Month) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		days[d-1] = CalendarDay{
			Day:    d,
			Date:   time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Profit: decimal.Zero,
		}
	}

	for _, o := range orders {
		if o.Status == entities.OrderStatusCancelled {
			continue
		}
		created := o.CreatedAt.UTC()
		if created.Year() != year || created.Month() != month {
			continue
		}
		cell := &days[created.Day()-1]
		cell.Profit = cell.Profit.Add(o.TotalAmount)
		cell.Count++
	}

	return Calendar{
		Month:         first.Format("2006-01"),
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}
}
