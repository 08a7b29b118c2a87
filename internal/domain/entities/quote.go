package entities

import "time"

// QuoteStatus represents the persisted lifecycle of a priced document.
//
// Domain notes:
//   - Drafts exist only client-side; nothing is persisted before the first save.
//   - A saved quote (orçamento) may be reloaded, edited with full-replace
//     semantics and eventually converted into a finalized sale.
//   - A finalized sale is terminal: no further edits through this flow.

type QuoteStatus string

const (
	QuoteStatusOrcamento       QuoteStatus = "orcamento"
	QuoteStatusVendaFinalizada QuoteStatus = "venda_finalizada"
)

// Customer is the customer snapshot embedded in a document. A free-text name
// with no formal customer record is valid for walk-in counter sales.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// MaterialSnapshot copies the selected catalog entry and the price actually
// applied, so the document stays stable if catalog prices later change.
type MaterialSnapshot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	UnitPrice   float64     `json:"unit_price"`
	PricingMode PricingMode `json:"pricing_mode"`
}

// DiscountKind distinguishes percentage from fixed-amount discounts.

type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage"
	DiscountKindFixed      DiscountKind = "fixed"
)

// Discount is applied once to a document subtotal. The zero value means no
// discount.
type Discount struct {
	Kind   DiscountKind `json:"kind,omitempty"`
	Amount float64      `json:"amount,omitempty"`
}

// Quote is the priced document persisted in DynamoDB. It covers both saved
// quotes and finalized sales; Status tells them apart.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - All values are in the shop currency; Subtotal = MaterialValue +
//     ServicesValue, Total = Subtotal - DiscountValue.
type Quote struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Status   QuoteStatus `json:"status"`
	Customer Customer    `json:"customer"`

	Material     MaterialSnapshot `json:"material"`
	ItemHeightCm float64          `json:"item_height_cm"`
	ItemWidthCm  float64          `json:"item_width_cm"`
	AreaHeightM  float64          `json:"area_height_m"`
	AreaWidthM   float64          `json:"area_width_m"`
	Services     []ServiceFee     `json:"services,omitempty"`

	Quantity      int     `json:"quantity"`
	MaterialValue float64 `json:"material_value"`
	ServicesValue float64 `json:"services_value"`
	Subtotal      float64 `json:"subtotal"`

	Discount      Discount `json:"discount,omitempty"`
	DiscountValue float64  `json:"discount_value"`
	Total         float64  `json:"total"`
	UnitValue     float64  `json:"unit_value"`

	Notes string `json:"notes,omitempty"`

	// QuoteID back-references the originating quote on a sale created by
	// conversion; empty on direct sales and on quotes themselves.
	QuoteID   string `json:"quote_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Finalized reports whether the document reached its terminal state.
func (q Quote) Finalized() bool {
	return q.Status == QuoteStatusVendaFinalizada
}
