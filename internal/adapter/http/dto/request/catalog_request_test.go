package request

import (
	"testing"

	"grafica_xpto/internal/domain/entities"
)

func TestCatalogEntryRequest_ToInput(t *testing.T) {
	r := CatalogEntryRequest{
		Name:            " Lona 440g ",
		UnitPriceByArea: 2,
		UnitPriceByUnit: 15,
		PricingMode:     " area ",
	}

	in := r.ToInput()
	if in.Name != "Lona 440g" {
		t.Fatalf("expected trimmed name, got %q", in.Name)
	}
	if in.UnitPriceByArea != 2 || in.UnitPriceByUnit != 15 {
		t.Fatalf("unexpected prices: %+v", in)
	}
	if in.PricingMode != entities.PricingModeArea {
		t.Fatalf("unexpected mode: %q", in.PricingMode)
	}
}
