package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"grafica_xpto/internal/adapter/http/handlers/mocks"
	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSaleHandler_FinalizeQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/finalize", h.FinalizeQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/finalize", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/finalize", h.FinalizeQuote)

		uc.EXPECT().FinalizeFromQuote(gomock.Any(), "missing", gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/missing/finalize", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/finalize", h.FinalizeQuote)

		uc.EXPECT().FinalizeFromQuote(gomock.Any(), "quote-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteAlreadyFinalized)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/finalize", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/finalize", h.FinalizeQuote)

		uc.EXPECT().FinalizeFromQuote(gomock.Any(), "quote-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrPaymentGatewayNotAvailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/finalize", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/finalize", h.FinalizeQuote)

		uc.EXPECT().FinalizeFromQuote(gomock.Any(), "quote-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(entities.Quote{
			ID:        "sale-1",
			Status:    entities.QuoteStatusVendaFinalizada,
			QuoteID:   "quote-1",
			PaymentID: "pay-1",
			Total:     2.25,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/finalize", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "sale-1" || body["status"] != "venda_finalizada" || body["quote_id"] != "quote-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSaleHandler_CreateSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/sales", h.CreateSale)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non positive total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/sales", h.CreateSale)

		uc.EXPECT().FinalizeDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidSaleTotal)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(`{"customer":{"name":"Maria"},"material_id":"mat-1","mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/sales", h.CreateSale)

		uc.EXPECT().FinalizeDirect(gomock.Any(), gomock.Any(), json.RawMessage(`{"payment_method_id":"pix"}`)).Return(entities.Quote{
			ID:        "sale-1",
			Status:    entities.QuoteStatusVendaFinalizada,
			PaymentID: "pay-1",
			Total:     2.25,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(`{"customer":{"name":"Maria"},"material_id":"mat-1","item_height_cm":10,"item_width_cm":15,"area_height_m":1,"area_width_m":1,"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "sale-1" || body["payment_id"] != "pay-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSaleHandler_GetSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.GET("/v1/sales/:id", h.GetSale)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrSaleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.GET("/v1/sales/:id", h.GetSale)

		uc.EXPECT().GetByID(gomock.Any(), "sale-1").Return(entities.Quote{ID: "sale-1", Status: entities.QuoteStatusVendaFinalizada}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/sale-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapSaleError(t *testing.T) {
	if got := mapSaleError(usecase.ErrInvalidSaleTotal); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapSaleError(usecase.ErrInvalidPaymentPayload); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSaleError(usecase.ErrPaymentGatewayNotAvailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapSaleError(usecase.ErrSaleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	// Anything outside the sale sentinels falls through to the quote mapping.
	if got := mapSaleError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSaleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
