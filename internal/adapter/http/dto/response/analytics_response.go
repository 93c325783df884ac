package response

import (
	"time"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase"
)

type CustomerProfileResponse struct {
	Phone       string    `json:"phone"`
	TotalOrders int       `json:"total_orders"`
	TotalSpent  string    `json:"total_spent"`
	FirstVisit  time.Time `json:"first_visit"`
	LastVisit   time.Time `json:"last_visit"`
}

func FromCustomerProfiles(profiles []entities.CustomerProfile) []CustomerProfileResponse {
	out := make([]CustomerProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, CustomerProfileResponse{
			Phone:       p.Phone,
			TotalOrders: p.TotalOrders,
			TotalSpent:  p.TotalSpent.StringFixed(2),
			FirstVisit:  p.FirstVisit,
			LastVisit:   p.LastVisit,
		})
	}
	return out
}

type PrepTimeResponse struct {
	AveragePrepMinutes int `json:"average_prep_minutes"`
}

type RevenueBucketResponse struct {
	Label string `json:"label"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type LeaderboardResponse struct {
	Granularity   string                  `json:"granularity"`
	Buckets       []RevenueBucketResponse `json:"buckets"`
	GrowthPercent float64                 `json:"growth_percent"`
}

func FromLeaderboard(l usecase.Leaderboard) LeaderboardResponse {
	buckets := make([]RevenueBucketResponse, 0, len(l.Buckets))
	for _, b := range l.Buckets {
		buckets = append(buckets, RevenueBucketResponse{
			Label: b.Label,
			Total: b.Total.StringFixed(2),
			Count: b.Count,
		})
	}
	return LeaderboardResponse{
		Granularity:   string(l.Granularity),
		Buckets:       buckets,
		GrowthPercent: l.GrowthPercent,
	}
}

type CalendarDayResponse struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Profit string `json:"profit"`
	Count  int    `json:"count"`
}

type CalendarResponse struct {
	Month         string                `json:"month"`
	LeadingBlanks int                   `json:"leading_blanks"`
	Days          []CalendarDayResponse `json:"days"`
}

func FromCalendar(c usecase.Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(c.Days))
	for _, d := range c.Days {
		days = append(days, CalendarDayResponse{
			Day:    d.Day,
			Date:   d.Date,
			Profit: d.Profit.StringFixed(2),
			Count:  d.Count,
		})
	}
	return CalendarResponse{
		Month:         c.Month,
		LeadingBlanks: c.LeadingBlanks,
		Days:          days,
	}
}
