package entities

import "time"

// PricingMode says how a catalog entry is charged: by printed area (m²) or
// by whole unit.

type PricingMode string

const (
	PricingModeArea PricingMode = "area"
	PricingModeUnit PricingMode = "unidade"
)

// CatalogEntry is a priced material/product record usable as the base of a
// pricing computation.
//
// Prices are optional; zero means "no price registered for that mode".
// Documents never reference an entry live: the applied price is copied into
// the document at selection time, so later catalog edits don't rewrite
// history.

type CatalogEntry struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	UnitPriceByArea float64     `json:"unit_price_by_area,omitempty"`
	UnitPriceByUnit float64     `json:"unit_price_by_unit,omitempty"`
	PricingMode     PricingMode `json:"pricing_mode"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ResolveUnitPrice returns the price applicable under the given mode hint.
// An empty hint defers to the entry's own pricing mode. Area mode falls back
// to the per-unit price when no per-area price is registered. The boolean is
// false when no usable price exists.
func (e CatalogEntry) ResolveUnitPrice(hint PricingMode) (float64, bool) {
	mode := hint
	if mode == "" {
		mode = e.PricingMode
	}

	if mode == PricingModeArea {
		if e.UnitPriceByArea > 0 {
			return e.UnitPriceByArea, true
		}
		if e.UnitPriceByUnit > 0 {
			return e.UnitPriceByUnit, true
		}
		return 0, false
	}

	if e.UnitPriceByUnit > 0 {
		return e.UnitPriceByUnit, true
	}
	return 0, false
}

// HasUsablePrice reports whether the entry can be offered for selection at
// all. Entries without any price are filtered out of pricing-facing lists.
func (e CatalogEntry) HasUsablePrice() bool {
	return e.UnitPriceByArea > 0 || e.UnitPriceByUnit > 0
}

// ServiceFee is an additive per-area charge layered onto a base material
// price (finishing, lamination, eyelets...).
type ServiceFee struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPriceByArea float64 `json:"unit_price_by_area"`
}
