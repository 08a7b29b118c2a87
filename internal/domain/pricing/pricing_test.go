package pricing

import (
	"math"
	"testing"

	"grafica_xpto/internal/domain/entities"
)

func TestFitQuantity(t *testing.T) {
	t.Run("grid fit both orientations", func(t *testing.T) {
		// 10cm x 15cm item on a 1m x 1m area: 6*10 = 60 either way.
		qty, ok := FitQuantity(10, 15, 1, 1)
		if !ok {
			t.Fatalf("expected complete input")
		}
		if qty != 60 {
			t.Fatalf("expected 60, got %d", qty)
		}
	})

	t.Run("rotation picks the better grid", func(t *testing.T) {
		// 30cm x 40cm item on a 0.9m x 1.2m area:
		// normal  = floor(1.2/0.4)*floor(0.9/0.3) = 3*3 = 9
		// rotated = floor(1.2/0.3)*floor(0.9/0.4) = 4*2 = 8
		qty, ok := FitQuantity(30, 40, 0.9, 1.2)
		if !ok || qty != 9 {
			t.Fatalf("expected 9, got %d (ok=%v)", qty, ok)
		}
	})

	t.Run("exact fits survive float division", func(t *testing.T) {
		// Spans that divide exactly land slightly below the true integer in
		// floating point (1/0.1 = 9.999...); the whole row must still count.
		cases := []struct {
			ih, iw, ah, aw float64
			want           int
		}{
			{10, 10, 1, 1, 100},
			{30, 40, 0.9, 1.2, 9},
			{20, 30, 0.6, 0.6, 6},
		}
		for _, c := range cases {
			qty, ok := FitQuantity(c.ih, c.iw, c.ah, c.aw)
			if !ok || qty != c.want {
				t.Fatalf("expected %d for %+v, got %d (ok=%v)", c.want, c, qty, ok)
			}
		}
	})

	t.Run("item swap symmetry", func(t *testing.T) {
		cases := []struct{ ih, iw, ah, aw float64 }{
			{10, 15, 1, 1},
			{30, 40, 0.9, 1.2},
			{7, 3, 0.5, 2},
			{33, 21, 1.7, 0.6},
		}
		for _, c := range cases {
			a, okA := FitQuantity(c.ih, c.iw, c.ah, c.aw)
			b, okB := FitQuantity(c.iw, c.ih, c.ah, c.aw)
			if okA != okB || a != b {
				t.Fatalf("asymmetric fit for %+v: %d vs %d", c, a, b)
			}
		}
	})

	t.Run("zero on incomplete input", func(t *testing.T) {
		cases := []struct{ ih, iw, ah, aw float64 }{
			{0, 15, 1, 1},
			{10, -1, 1, 1},
			{10, 15, 0, 1},
			{10, 15, 1, 0},
			{math.NaN(), 15, 1, 1},
			{10, 15, math.Inf(1), 1},
		}
		for _, c := range cases {
			qty, ok := FitQuantity(c.ih, c.iw, c.ah, c.aw)
			if ok || qty != 0 {
				t.Fatalf("expected incomplete zero for %+v, got qty=%d ok=%v", c, qty, ok)
			}
		}
	})

	t.Run("item larger than area", func(t *testing.T) {
		qty, ok := FitQuantity(300, 300, 1, 1)
		if !ok || qty != 0 {
			t.Fatalf("expected 0 copies, got %d (ok=%v)", qty, ok)
		}
	})
}

func TestApplyDiscount(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		dv, total := ApplyDiscount(2.50, entities.Discount{Kind: entities.DiscountKindPercentage, Amount: 10})
		if math.Abs(dv-0.25) > 1e-9 || math.Abs(total-2.25) > 1e-9 {
			t.Fatalf("unexpected discount: value=%v total=%v", dv, total)
		}
	})

	t.Run("fixed", func(t *testing.T) {
		dv, total := ApplyDiscount(100, entities.Discount{Kind: entities.DiscountKindFixed, Amount: 30})
		if dv != 30 || total != 70 {
			t.Fatalf("unexpected discount: value=%v total=%v", dv, total)
		}
	})

	t.Run("zero discount is identity", func(t *testing.T) {
		for _, d := range []entities.Discount{
			{},
			{Kind: entities.DiscountKindPercentage, Amount: 0},
			{Kind: entities.DiscountKindFixed, Amount: 0},
		} {
			dv, total := ApplyDiscount(42.42, d)
			if dv != 0 || total != 42.42 {
				t.Fatalf("expected identity for %+v, got value=%v total=%v", d, dv, total)
			}
		}
	})

	t.Run("fixed discount above subtotal goes negative", func(t *testing.T) {
		// Unclamped on purpose; the operator sees the negative total.
		dv, total := ApplyDiscount(10, entities.Discount{Kind: entities.DiscountKindFixed, Amount: 25})
		if dv != 25 || total != -15 {
			t.Fatalf("expected -15, got value=%v total=%v", dv, total)
		}
	})
}

func TestServicesValue(t *testing.T) {
	s1 := []entities.ServiceFee{{ID: "lam", Name: "Laminação", UnitPriceByArea: 0.50}}
	s2 := []entities.ServiceFee{
		{ID: "ilh", Name: "Ilhós", UnitPriceByArea: 0.20},
		{ID: "ref", Name: "Reforço", UnitPriceByArea: 0.10},
	}

	t.Run("additivity over disjoint sets", func(t *testing.T) {
		area := 2.5
		union := append(append([]entities.ServiceFee{}, s1...), s2...)
		got := ServicesValue(area, union)
		want := ServicesValue(area, s1) + ServicesValue(area, s2)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("duplicates count once", func(t *testing.T) {
		dup := append(append([]entities.ServiceFee{}, s1...), s1...)
		if got := ServicesValue(1, dup); got != 0.50 {
			t.Fatalf("expected 0.5, got %v", got)
		}
	})

	t.Run("order irrelevant", func(t *testing.T) {
		reversed := []entities.ServiceFee{s2[1], s2[0]}
		if ServicesValue(3, s2) != ServicesValue(3, reversed) {
			t.Fatalf("services sum depends on order")
		}
	})
}

func TestCompute(t *testing.T) {
	banner := entities.CatalogEntry{
		ID:              "mat-1",
		Name:            "Lona 440g",
		UnitPriceByArea: 2.00,
		PricingMode:     entities.PricingModeArea,
	}

	t.Run("no material selected", func(t *testing.T) {
		_, err := Compute(Input{})
		if err != ErrNoMaterialSelected {
			t.Fatalf("expected ErrNoMaterialSelected, got %v", err)
		}
	})

	t.Run("material without usable price", func(t *testing.T) {
		e := entities.CatalogEntry{ID: "mat-2", Name: "Sem preço", PricingMode: entities.PricingModeArea}
		_, err := Compute(Input{Material: &e})
		if err != ErrNoUsablePrice {
			t.Fatalf("expected ErrNoUsablePrice, got %v", err)
		}
	})

	t.Run("end to end with service and percentage discount", func(t *testing.T) {
		res, err := Compute(Input{
			Material:     &banner,
			ItemHeightCm: 10,
			ItemWidthCm:  15,
			AreaHeightM:  1,
			AreaWidthM:   1,
			Services:     []entities.ServiceFee{{ID: "lam", UnitPriceByArea: 0.50}},
			Discount:     entities.Discount{Kind: entities.DiscountKindPercentage, Amount: 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quantity != 60 {
			t.Fatalf("expected quantity 60, got %d", res.Quantity)
		}
		if math.Abs(res.MaterialValue-2.00) > 1e-9 || math.Abs(res.ServicesValue-0.50) > 1e-9 {
			t.Fatalf("unexpected values: %+v", res)
		}
		if math.Abs(res.Subtotal-2.50) > 1e-9 || math.Abs(res.Total-2.25) > 1e-9 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if math.Abs(res.UnitValue-0.0375) > 1e-9 {
			t.Fatalf("expected unit value 0.0375, got %v", res.UnitValue)
		}
	})

	t.Run("incomplete dimensions yield quiet zero result", func(t *testing.T) {
		res, err := Compute(Input{Material: &banner, ItemHeightCm: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Incomplete || res.Message == "" {
			t.Fatalf("expected incomplete result with message, got %+v", res)
		}
		if res.Quantity != 0 || res.Total != 0 || res.Subtotal != 0 {
			t.Fatalf("expected zero result, got %+v", res)
		}
	})

	t.Run("zero quantity guards unit value", func(t *testing.T) {
		res, err := Compute(Input{
			Material:     &banner,
			ItemHeightCm: 300,
			ItemWidthCm:  300,
			AreaHeightM:  1,
			AreaWidthM:   1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", res.Quantity)
		}
		if res.UnitValue != 0 || math.IsNaN(res.UnitValue) {
			t.Fatalf("expected unit value 0, got %v", res.UnitValue)
		}
	})

	t.Run("area mode falls back to per-unit price", func(t *testing.T) {
		e := entities.CatalogEntry{
			ID:              "mat-3",
			Name:            "Adesivo recorte",
			UnitPriceByUnit: 5.00,
			PricingMode:     entities.PricingModeArea,
		}
		res, err := Compute(Input{
			Material:     &e,
			ItemHeightCm: 50,
			ItemWidthCm:  50,
			AreaHeightM:  1,
			AreaWidthM:   1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UnitPrice != 5.00 {
			t.Fatalf("expected fallback price 5.00, got %v", res.UnitPrice)
		}
	})
}
