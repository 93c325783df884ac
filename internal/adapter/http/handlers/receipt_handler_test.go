package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restauplus/internal/adapter/http/handlers/mocks"
	"restauplus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func receiptRouter(h *ReceiptHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders/:order_id/receipt", h.GetReceipt)
	return r
}

func TestReceiptHandler_GetReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := receiptRouter(NewReceiptHandler(uc))

		uc.EXPECT().Render(gomock.Any(), "ord-1").
			Return("<!DOCTYPE html><html><body>Receipt</body></html>", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/receipt", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("expected html content type, got %q", ct)
		}
		if !strings.Contains(w.Body.String(), "Receipt") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := receiptRouter(NewReceiptHandler(uc))

		uc.EXPECT().Render(gomock.Any(), "missing").Return("", usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing/receipt", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
