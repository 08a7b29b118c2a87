package response

import (
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:     "quote-1",
		Name:   "Banner loja",
		Status: entities.QuoteStatusOrcamento,
		Customer: entities.Customer{
			Name:  "Maria",
			Phone: "11 99999-0000",
		},
		Material: entities.MaterialSnapshot{
			ID:          "mat-1",
			Name:        "Lona 440g",
			UnitPrice:   2,
			PricingMode: entities.PricingModeArea,
		},

		ItemHeightCm: 10,
		ItemWidthCm:  15,
		AreaHeightM:  1,
		AreaWidthM:   1,

		Services: []entities.ServiceFee{{ID: "svc-1", Name: "Laminação", UnitPriceByArea: 0.5}},

		Quantity:      60,
		MaterialValue: 2,
		ServicesValue: 0.5,
		Subtotal:      2.5,

		Discount:      entities.Discount{Kind: entities.DiscountKindPercentage, Amount: 10},
		DiscountValue: 0.25,
		Total:         2.25,
		UnitValue:     0.0375,

		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "quote-1" || res.Status != "orcamento" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Customer.Name != "Maria" {
		t.Fatalf("unexpected customer: %+v", res.Customer)
	}
	if res.Material.ID != "mat-1" || res.Material.UnitPrice != 2 || res.Material.PricingMode != "area" {
		t.Fatalf("unexpected material snapshot: %+v", res.Material)
	}
	if len(res.Services) != 1 || res.Services[0].UnitPriceByArea != 0.5 {
		t.Fatalf("unexpected services: %+v", res.Services)
	}
	if res.Quantity != 60 || res.Subtotal != 2.5 || res.Total != 2.25 || res.UnitValue != 0.0375 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.Discount == nil || res.Discount.Kind != "percentage" || res.Discount.Amount != 10 {
		t.Fatalf("unexpected discount: %+v", res.Discount)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuote_EmptyOptionals(t *testing.T) {
	res := FromQuote(entities.Quote{ID: "quote-1", Status: entities.QuoteStatusOrcamento})
	if res.Services != nil {
		t.Fatalf("expected nil services, got %+v", res.Services)
	}
	if res.Discount != nil {
		t.Fatalf("expected nil discount, got %+v", res.Discount)
	}
}

func TestFromQuote_SaleFields(t *testing.T) {
	res := FromQuote(entities.Quote{
		ID:        "sale-1",
		Status:    entities.QuoteStatusVendaFinalizada,
		QuoteID:   "quote-1",
		PaymentID: "pay-1",
	})
	if res.Status != "venda_finalizada" || res.QuoteID != "quote-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected sale fields: %+v", res)
	}
}

func TestFromQuotes(t *testing.T) {
	out := FromQuotes([]entities.Quote{{ID: "q1"}, {ID: "q2"}})
	if len(out) != 2 || out[0].ID != "q1" || out[1].ID != "q2" {
		t.Fatalf("unexpected list: %+v", out)
	}

	if empty := FromQuotes(nil); len(empty) != 0 {
		t.Fatalf("expected empty list, got %+v", empty)
	}
}
