package pricing

import "grafica_xpto/internal/domain/entities"

// ApplyDiscount reduces a subtotal by a discount descriptor and returns the
// discount value and the resulting total.
//
// Totals are intentionally NOT clamped at zero: a fixed discount larger than
// the subtotal produces a negative total and it is up to the operator to fix
// the inputs. Quote and sale flows share this exact behavior.
func ApplyDiscount(subtotal float64, d entities.Discount) (discountValue, total float64) {
	switch d.Kind {
	case entities.DiscountKindPercentage:
		discountValue = subtotal * d.Amount / 100.0
	case entities.DiscountKindFixed:
		discountValue = d.Amount
	default:
		discountValue = 0
	}
	return discountValue, subtotal - discountValue
}
