package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type MaterialResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unit_price"`
	PricingMode string  `json:"pricing_mode"`
}

type ServiceFeeResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPriceByArea float64 `json:"unit_price_by_area"`
}

type DiscountResponse struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name,omitempty"`
	Status   string           `json:"status"`
	Customer CustomerResponse `json:"customer"`
	Material MaterialResponse `json:"material"`

	ItemHeightCm float64 `json:"item_height_cm"`
	ItemWidthCm  float64 `json:"item_width_cm"`
	AreaHeightM  float64 `json:"area_height_m"`
	AreaWidthM   float64 `json:"area_width_m"`

	Services []ServiceFeeResponse `json:"services,omitempty"`

	Quantity      int     `json:"quantity"`
	MaterialValue float64 `json:"material_value"`
	ServicesValue float64 `json:"services_value"`
	Subtotal      float64 `json:"subtotal"`

	Discount      *DiscountResponse `json:"discount,omitempty"`
	DiscountValue float64           `json:"discount_value"`
	Total         float64           `json:"total"`
	UnitValue     float64           `json:"unit_value"`

	Notes     string `json:"notes,omitempty"`
	QuoteID   string `json:"quote_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	services := make([]ServiceFeeResponse, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, ServiceFeeResponse{
			ID:              s.ID,
			Name:            s.Name,
			UnitPriceByArea: s.UnitPriceByArea,
		})
	}
	if len(services) == 0 {
		services = nil
	}

	var discount *DiscountResponse
	if q.Discount.Kind != "" {
		discount = &DiscountResponse{Kind: string(q.Discount.Kind), Amount: q.Discount.Amount}
	}

	return QuoteResponse{
		ID:       q.ID,
		Name:     q.Name,
		Status:   string(q.Status),
		Customer: CustomerResponse{Name: q.Customer.Name, Phone: q.Customer.Phone, Email: q.Customer.Email},
		Material: MaterialResponse{
			ID:          q.Material.ID,
			Name:        q.Material.Name,
			UnitPrice:   q.Material.UnitPrice,
			PricingMode: string(q.Material.PricingMode),
		},

		ItemHeightCm: q.ItemHeightCm,
		ItemWidthCm:  q.ItemWidthCm,
		AreaHeightM:  q.AreaHeightM,
		AreaWidthM:   q.AreaWidthM,

		Services: services,

		Quantity:      q.Quantity,
		MaterialValue: q.MaterialValue,
		ServicesValue: q.ServicesValue,
		Subtotal:      q.Subtotal,

		Discount:      discount,
		DiscountValue: q.DiscountValue,
		Total:         q.Total,
		UnitValue:     q.UnitValue,

		Notes:     q.Notes,
		QuoteID:   q.QuoteID,
		PaymentID: q.PaymentID,

		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
