package handlers

import (
	"errors"
	"net/http"
	"time"

	response "restauplus/internal/adapter/http/dto/response"
	"restauplus/internal/usecase"
	"restauplus/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the owner-dashboard aggregation views.
//
// These endpoints answer 200 with zero-valued bodies when the order store is
// unreachable; the usecase already degraded the failure to an empty dataset.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// GetCustomerProfiles returns per-customer rollups, biggest spenders first.
func (h *AnalyticsHandler) GetCustomerProfiles(c *gin.Context) {
	profiles, err := h.usecase.CustomerProfiles(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerProfiles(profiles))
}

func (h *AnalyticsHandler) GetPrepTime(c *gin.Context) {
	minutes, err := h.usecase.AveragePrepMinutes(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PrepTimeResponse{AveragePrepMinutes: minutes})
}

// GetLeaderboard buckets revenue at ?granularity= (day|week|month|year,
// default week) and reports period-over-period growth.
func (h *AnalyticsHandler) GetLeaderboard(c *gin.Context) {
	granularity := usecase.BucketGranularity(c.DefaultQuery("granularity", string(usecase.BucketWeek)))

	leaderboard, err := h.usecase.RevenueLeaderboard(c.Request.Context(), c.Param("restaurant_id"), granularity)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeaderboard(leaderboard))
}

// GetCalendar serves the monthly heatmap grid. ?month=YYYY-MM selects the
// month; the current month is the default.
func (h *AnalyticsHandler) GetCalendar(c *gin.Context) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_MONTH", "Month must look like 2024-06", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	calendar, err := h.usecase.RevenueCalendar(c.Request.Context(), c.Param("restaurant_id"), year, month)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendar(calendar))
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRestaurantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGranularity):
		return pkg.NewDomainErrorSimple("INVALID_GRANULARITY", "Granularity must be one of day, week, month, year", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_MONTH", "Month out of supported range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
