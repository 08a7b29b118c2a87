package request

import (
	"strings"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"
)

// CatalogEntryRequest is the payload for creating/updating a priced
// material/product record.
type CatalogEntryRequest struct {
	Name            string  `json:"name" binding:"required"`
	UnitPriceByArea float64 `json:"unit_price_by_area"`
	UnitPriceByUnit float64 `json:"unit_price_by_unit"`
	PricingMode     string  `json:"pricing_mode"`
}

func (r CatalogEntryRequest) ToInput() usecase.CatalogInput {
	return usecase.CatalogInput{
		Name:            strings.TrimSpace(r.Name),
		UnitPriceByArea: r.UnitPriceByArea,
		UnitPriceByUnit: r.UnitPriceByUnit,
		PricingMode:     entities.PricingMode(strings.TrimSpace(r.PricingMode)),
	}
}
