package routes

import (
	"grafica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathSales   = "/sales"
	PathCatalog = "/catalog"
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, saleHandler *handlers.SaleHandler, catalogHandler *handlers.CatalogHandler) {
	pricing := rg.Group(PathPricing)
	{
		// Live calculator preview; computes, never persists.
		pricing.POST("/preview", quoteHandler.Preview)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.POST("/:id/finalize", saleHandler.FinalizeQuote)
	}

	sales := rg.Group(PathSales)
	{
		// PDV: price and charge in one step.
		sales.POST("", saleHandler.CreateSale)
		sales.GET("/:id", saleHandler.GetSale)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.POST("", catalogHandler.CreateEntry)
		catalog.GET("", catalogHandler.ListEntries)
		catalog.GET("/:id", catalogHandler.GetEntry)
		catalog.PUT("/:id", catalogHandler.UpdateEntry)
	}
}
