package handlers

import (
	"errors"
	"net/http"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/domain/pricing"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for priced documents (quotes) and the
// live pricing preview.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Preview runs the pricing engine over the current selections without
// persisting anything. Incomplete dimensions come back inside the body
// (incomplete=true plus a message), matching the calculator's inline hint.
func (h *QuoteHandler) Preview(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Preview(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

// CreateQuote persists a new quote assembled from the request selections.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Save(c.Request.Context(), usecase.NewDocument(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// UpdateQuote rewrites an existing quote whole (full-replace semantics).
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Save(c.Request.Context(), usecase.EditingExisting(id), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrMissingCustomerName),
		errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrIncompleteDimensions):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrNoMaterialSelected):
		return pkg.NewDomainErrorSimple("NO_MATERIAL_SELECTED", "Select a material", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrNoUsablePrice):
		return pkg.NewDomainErrorSimple("MATERIAL_WITHOUT_PRICE", "Selected material has no usable price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyFinalized):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_FINALIZED", "Quote already finalized as a sale", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
