package pricing

import (
	"errors"

	"grafica_xpto/internal/domain/entities"
)

var (
	ErrNoMaterialSelected = errors.New("select a material")
	ErrNoUsablePrice      = errors.New("selected material has no usable price")
)

const msgIncompleteDimensions = "informe as dimensões do item e da área de impressão"

// Input gathers everything the engine needs for one computation. Material is
// the catalog entry snapshot taken at selection time; ModeHint optionally
// overrides the entry's own pricing mode.
type Input struct {
	Material *entities.CatalogEntry
	ModeHint entities.PricingMode

	ItemHeightCm float64
	ItemWidthCm  float64
	AreaHeightM  float64
	AreaWidthM   float64

	Services []entities.ServiceFee
	Discount entities.Discount
}

// Result is the full breakdown of one computation. Incomplete marks the
// quiet zero-result state reached when a dimension is missing; Message then
// carries the inline hint for the operator.
type Result struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	TotalArea float64 `json:"total_area"`

	MaterialValue float64 `json:"material_value"`
	ServicesValue float64 `json:"services_value"`
	Subtotal      float64 `json:"subtotal"`
	DiscountValue float64 `json:"discount_value"`
	Total         float64 `json:"total"`
	UnitValue     float64 `json:"unit_value"`

	Incomplete bool   `json:"incomplete,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Compute runs the whole engine: resolve the unit price, fit the item into
// the area, price material and services, apply the discount and derive the
// per-copy value.
//
// A missing material is a precondition failure (error); missing dimensions
// are not, they produce the Incomplete zero-result.
func Compute(in Input) (Result, error) {
	if in.Material == nil {
		return Result{}, ErrNoMaterialSelected
	}
	unitPrice, ok := in.Material.ResolveUnitPrice(in.ModeHint)
	if !ok {
		return Result{}, ErrNoUsablePrice
	}

	qty, complete := FitQuantity(in.ItemHeightCm, in.ItemWidthCm, in.AreaHeightM, in.AreaWidthM)
	if !complete {
		return Result{
			UnitPrice:  unitPrice,
			Incomplete: true,
			Message:    msgIncompleteDimensions,
		}, nil
	}

	totalArea := in.AreaHeightM * in.AreaWidthM
	materialValue := totalArea * unitPrice
	servicesValue := ServicesValue(totalArea, in.Services)
	subtotal := materialValue + servicesValue
	discountValue, total := ApplyDiscount(subtotal, in.Discount)

	unitValue := 0.0
	if qty > 0 {
		unitValue = total / float64(qty)
	}

	return Result{
		Quantity:      qty,
		UnitPrice:     unitPrice,
		TotalArea:     totalArea,
		MaterialValue: materialValue,
		ServicesValue: servicesValue,
		Subtotal:      subtotal,
		DiscountValue: discountValue,
		Total:         total,
		UnitValue:     unitValue,
	}, nil
}

// ServicesValue sums the per-area service fees over the total area. Fees are
// unique by id; duplicates in the input count once. The sum is associative
// and order-independent.
func ServicesValue(totalArea float64, services []entities.ServiceFee) float64 {
	seen := make(map[string]struct{}, len(services))
	var sum float64
	for _, fee := range services {
		if _, dup := seen[fee.ID]; dup {
			continue
		}
		seen[fee.ID] = struct{}{}
		sum += totalArea * fee.UnitPriceByArea
	}
	return sum
}
