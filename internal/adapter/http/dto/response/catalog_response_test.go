package response

import (
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
)

func TestFromCatalogEntry(t *testing.T) {
	now := time.Now().UTC()
	e := entities.CatalogEntry{
		ID:              "mat-1",
		Name:            "Lona 440g",
		UnitPriceByArea: 2,
		PricingMode:     entities.PricingModeArea,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res := FromCatalogEntry(e)
	if res.ID != "mat-1" || res.Name != "Lona 440g" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.UnitPriceByArea != 2 || res.UnitPriceByUnit != 0 || res.PricingMode != "area" {
		t.Fatalf("unexpected price fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromCatalogEntries(t *testing.T) {
	out := FromCatalogEntries([]entities.CatalogEntry{{ID: "mat-1"}, {ID: "mat-2"}})
	if len(out) != 2 || out[0].ID != "mat-1" || out[1].ID != "mat-2" {
		t.Fatalf("unexpected list: %+v", out)
	}
}
