package request

import (
	"encoding/json"
	"strings"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ServiceFeeRequest struct {
	ID              string  `json:"id" binding:"required"`
	Name            string  `json:"name"`
	UnitPriceByArea float64 `json:"unit_price_by_area"`
}

type DiscountRequest struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

// QuoteRequest carries the operator's current selections: customer, material,
// dimensions of the piece (cm) and of the print area (m), services and
// discount. It backs quote create/update, the pricing preview and the direct
// sale flow.
type QuoteRequest struct {
	Name        string          `json:"name"`
	Customer    CustomerRequest `json:"customer"`
	MaterialID  string          `json:"material_id"`
	PricingMode string          `json:"pricing_mode"`

	ItemHeightCm float64 `json:"item_height_cm"`
	ItemWidthCm  float64 `json:"item_width_cm"`
	AreaHeightM  float64 `json:"area_height_m"`
	AreaWidthM   float64 `json:"area_width_m"`

	Services []ServiceFeeRequest `json:"services"`
	Discount *DiscountRequest    `json:"discount"`
	Notes    string              `json:"notes"`
}

// ToInput translates the wire payload into the use-case command.
func (r QuoteRequest) ToInput() usecase.QuoteInput {
	services := make([]entities.ServiceFee, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.ServiceFee{
			ID:              strings.TrimSpace(s.ID),
			Name:            strings.TrimSpace(s.Name),
			UnitPriceByArea: s.UnitPriceByArea,
		})
	}
	if len(services) == 0 {
		services = nil
	}

	var discount entities.Discount
	if r.Discount != nil {
		discount = entities.Discount{
			Kind:   entities.DiscountKind(strings.TrimSpace(r.Discount.Kind)),
			Amount: r.Discount.Amount,
		}
	}

	return usecase.QuoteInput{
		Name: strings.TrimSpace(r.Name),
		Customer: entities.Customer{
			Name:  strings.TrimSpace(r.Customer.Name),
			Phone: strings.TrimSpace(r.Customer.Phone),
			Email: strings.TrimSpace(r.Customer.Email),
		},
		MaterialID:   strings.TrimSpace(r.MaterialID),
		ModeHint:     entities.PricingMode(strings.TrimSpace(r.PricingMode)),
		ItemHeightCm: r.ItemHeightCm,
		ItemWidthCm:  r.ItemWidthCm,
		AreaHeightM:  r.AreaHeightM,
		AreaWidthM:   r.AreaWidthM,
		Services:     services,
		Discount:     discount,
		Notes:        r.Notes,
	}
}

// SaleRequest is the direct (PDV) sale payload: the priced selections plus
// the raw payment-provider payload, stored and forwarded as-is.
type SaleRequest struct {
	QuoteRequest
	MPPayload json.RawMessage `json:"mp_payload"`
}

// SaleFinalizeRequest converts an existing saved quote into a sale.
type SaleFinalizeRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
