package domain

type (
	// CartItem is one cart line. Two lines with an equal LineKey are the
	// same line and must never coexist in a cart.
	CartItem struct {
		Product       Product
		Quantity      int
		SelectedSize  string
		SelectedColor string
	}

	// LineKey is the cart line identity triple.
	LineKey struct {
		ProductID string
		Size      string
		Color     string
	}
)

func (i CartItem) Key() LineKey {
	return LineKey{
		ProductID: i.Product.ProductID,
		Size:      i.SelectedSize,
		Color:     i.SelectedColor,
	}
}

func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Subtotal sums price*quantity over the cart lines.
// Discount prices are ignored, the current price applies.
func Subtotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// UnitCount sums quantities over the cart lines.
func UnitCount(items []CartItem) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
