package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restauplus/internal/adapter/http/handlers/mocks"
	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func analyticsRouter(h *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/restaurants/:restaurant_id/analytics")
	g.GET("/customers", h.GetCustomerProfiles)
	g.GET("/prep-time", h.GetPrepTime)
	g.GET("/leaderboard", h.GetLeaderboard)
	g.GET("/calendar", h.GetCalendar)
	return r
}

func TestAnalyticsHandler_GetCustomerProfiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		profiles := []entities.CustomerProfile{
			{
				Phone:       "+974111",
				TotalOrders: 2,
				TotalSpent:  decimal.NewFromInt(30),
				FirstVisit:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				LastVisit:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			},
		}
		uc.EXPECT().CustomerProfiles(gomock.Any(), "r-1").Return(profiles, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/customers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["phone"] != "+974111" || body[0]["total_spent"] != "30.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid restaurant id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().CustomerProfiles(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidRestaurantID)

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/%20/analytics/customers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_GetPrepTime(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	r := analyticsRouter(NewAnalyticsHandler(uc))

	uc.EXPECT().AveragePrepMinutes(gomock.Any(), "r-1").Return(33, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/prep-time", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["average_prep_minutes"] != 33 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyticsHandler_GetLeaderboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to weekly granularity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().RevenueLeaderboard(gomock.Any(), "r-1", usecase.BucketWeek).
			Return(usecase.Leaderboard{Granularity: usecase.BucketWeek}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/leaderboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid granularity maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().RevenueLeaderboard(gomock.Any(), "r-1", usecase.BucketGranularity("hour")).
			Return(usecase.Leaderboard{}, usecase.ErrInvalidGranularity)

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/leaderboard?granularity=hour", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_GetCalendar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("explicit month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().RevenueCalendar(gomock.Any(), "r-1", 2024, time.June).
			Return(usecase.Calendar{Month: "2024-06", LeadingBlanks: 6}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/calendar?month=2024-06", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["month"] != "2024-06" || body["leading_blanks"] != float64(6) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/calendar?month=june", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		r := analyticsRouter(NewAnalyticsHandler(uc))

		uc.EXPECT().RevenueCalendar(gomock.Any(), "r-1", gomock.Any(), gomock.Any()).
			Return(usecase.Calendar{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/analytics/calendar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
