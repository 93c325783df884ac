package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restauplus/internal/adapter/http/handlers/mocks"
	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/v1")
	v1.POST("/orders", h.CreateOrder)
	v1.GET("/orders/:order_id", h.GetOrder)
	v1.PATCH("/orders/:order_id/status", h.UpdateOrderStatus)
	v1.GET("/restaurants/:restaurant_id/orders", h.ListOrders)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		created := entities.Order{
			ID:           "ord-1",
			RestaurantID: "r-1",
			Status:       entities.OrderStatusPending,
			OrderType:    entities.OrderTypeDineIn,
			TotalAmount:  decimal.RequireFromString("21.50"),
			CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		}
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, o entities.Order) (entities.Order, error) {
				if o.RestaurantID != "r-1" || len(o.Items) != 1 {
					t.Fatalf("unexpected order passed to usecase: %+v", o)
				}
				return created, nil
			})

		body := `{
			"restaurant_id": "r-1",
			"customer_phone": "+974111",
			"items": [{"menu_item_id": "m-1", "name": "Karak Tea", "quantity": 2, "price_at_time": "3.50"}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["id"] != "ord-1" || got["total_amount"] != "21.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(`{"restaurant_id": "r-1"`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(entities.Order{}, usecase.ErrEmptyOrderItems)

		body := `{"restaurant_id": "r-1", "items": [{"menu_item_id": "m-1", "quantity": 1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID:          "ord-1",
			Status:      entities.OrderStatusServed,
			TotalAmount: decimal.NewFromInt(10),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["code"] != "ORDER_NOT_FOUND" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().ListByRestaurantID(gomock.Any(), "r-1").Return([]entities.Order{
			{ID: "ord-1", RestaurantID: "r-1", TotalAmount: decimal.NewFromInt(10)},
			{ID: "ord-2", RestaurantID: "r-1", TotalAmount: decimal.NewFromInt(20)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().ListByRestaurantID(gomock.Any(), "r-1").Return(nil, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/r-1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success normalizes status casing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusServed).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusServed, TotalAmount: decimal.NewFromInt(10)}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/status", strings.NewReader(`{"status": " Served "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatus("eaten")).
			Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/status", strings.NewReader(`{"status": "eaten"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
