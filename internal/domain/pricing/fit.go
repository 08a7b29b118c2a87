package pricing

import "math"

// FitQuantity computes how many whole copies of an item (dimensions in cm)
// fit in a stock area (dimensions in m), trying both the un-rotated and the
// 90°-rotated grid and keeping the better of the two. It is a grid-packing
// heuristic: all copies one way or all the other, no mixed layouts.
//
// Any non-positive or non-finite dimension yields quantity 0 with ok=false,
// the "incomplete input" state. That is not an error: the caller shows an
// inline hint and waits for the missing field.
func FitQuantity(itemHeightCm, itemWidthCm, areaHeightM, areaWidthM float64) (int, bool) {
	if !positive(itemHeightCm) || !positive(itemWidthCm) || !positive(areaHeightM) || !positive(areaWidthM) {
		return 0, false
	}

	itemH := itemHeightCm / 100.0
	itemW := itemWidthCm / 100.0

	fitNormal := gridCount(areaWidthM, itemW) * gridCount(areaHeightM, itemH)
	fitRotated := gridCount(areaWidthM, itemH) * gridCount(areaHeightM, itemW)

	qty := fitNormal
	if fitRotated > qty {
		qty = fitRotated
	}
	if qty < 0 {
		qty = 0
	}
	return qty, true
}

// fitEpsilon absorbs float representation error before flooring. Exact fits
// like a 40cm item across a 1.2m span divide to 2.9999999999999996 and would
// otherwise lose a whole column.
const fitEpsilon = 1e-9

func gridCount(span, item float64) int {
	return int(math.Floor(span/item + fitEpsilon))
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
