package pricing

import "github.com/shopspring/decimal"

// Business rules for order totals. Free shipping applies strictly above the
// threshold: a subtotal of exactly 50.00 still pays the flat fee.
const (
	FreeShippingThreshold = 50.00
	FlatShippingFee       = 4.99
)

var (
	freeShippingThreshold = decimal.NewFromFloat(FreeShippingThreshold)
	flatShippingFee       = decimal.NewFromFloat(FlatShippingFee)
)

// Line is the minimal input the calculator needs from one cart line.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Summary is derived from the current lines and never stored on its own.
type Summary struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Calculate derives subtotal, shipping and total from the given lines.
// Accumulation runs on decimals so fractional cents are not lost across
// many additions. An empty cart yields an all-zero summary.
func Calculate(lines []Line) Summary {
	if len(lines) == 0 {
		return Summary{}
	}

	subtotal := decimal.Zero
	count := 0
	for _, l := range lines {
		price := decimal.NewFromFloat(l.UnitPrice)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		count += l.Quantity
	}

	shipping := flatShippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	total := subtotal.Add(shipping)

	return Summary{
		Subtotal:  subtotal.Round(2).InexactFloat64(),
		Shipping:  shipping.Round(2).InexactFloat64(),
		Total:     total.Round(2).InexactFloat64(),
		ItemCount: count,
	}
}
