package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
)

type CatalogEntryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	UnitPriceByArea float64   `json:"unit_price_by_area,omitempty"`
	UnitPriceByUnit float64   `json:"unit_price_by_unit,omitempty"`
	PricingMode     string    `json:"pricing_mode"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromCatalogEntry(e entities.CatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:              e.ID,
		Name:            e.Name,
		UnitPriceByArea: e.UnitPriceByArea,
		UnitPriceByUnit: e.UnitPriceByUnit,
		PricingMode:     string(e.PricingMode),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromCatalogEntries(entries []entities.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromCatalogEntry(e))
	}
	return out
}
