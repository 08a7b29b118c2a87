package handlers

import (
	"errors"
	"log"
	"net/http"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles sale finalization: converting a saved quote and the
// direct counter (PDV) flow.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// FinalizeQuote converts a saved quote into a finalized, paid sale.
func (h *SaleHandler) FinalizeQuote(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[sale][handler] finalize start quote_id=%s", quoteID)

	var payload request.SaleFinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sale, err := h.usecase.FinalizeFromQuote(c.Request.Context(), quoteID, payload.MPPayload)
	if err != nil {
		log.Printf("[sale][handler] finalize failed quote_id=%s err=%v", quoteID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] finalize success quote_id=%s sale_id=%s", quoteID, sale.ID)

	c.JSON(http.StatusCreated, response.FromQuote(sale))
}

// CreateSale prices the current selections and finalizes them as a paid sale
// in one step, with no prior saved quote.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] direct sale start customer=%q", payload.Customer.Name)

	sale, err := h.usecase.FinalizeDirect(c.Request.Context(), payload.ToInput(), payload.MPPayload)
	if err != nil {
		log.Printf("[sale][handler] direct sale failed err=%v", err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] direct sale success sale_id=%s total=%.2f", sale.ID, sale.Total)

	c.JSON(http.StatusCreated, response.FromQuote(sale))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(sale))
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleTotal):
		return pkg.NewDomainErrorSimple("INVALID_SALE_TOTAL", "Sale total must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotAvailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return mapQuoteError(err)
	}
}
