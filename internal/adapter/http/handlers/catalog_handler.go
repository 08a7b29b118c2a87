package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for the priced material/product
// catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCatalogEntry(entry))
}

func (h *CatalogHandler) UpdateEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

func (h *CatalogHandler) GetEntry(c *gin.Context) {
	entry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

// ListEntries returns the catalog; ?priced=true keeps only entries with a
// usable price, which is what the pricing pages consume.
func (h *CatalogHandler) ListEntries(c *gin.Context) {
	onlyPriced, _ := strconv.ParseBool(c.Query("priced"))

	entries, err := h.usecase.List(c.Request.Context(), onlyPriced)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogEntryID), errors.Is(err, usecase.ErrInvalidCatalogEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
