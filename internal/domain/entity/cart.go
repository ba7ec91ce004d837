package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CartLine is one product in the cart. Title, image and price are a snapshot
// taken when the product was first added and are never re-fetched.
type CartLine struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price * quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered sequence of lines, in insertion order.
// At most one line exists per product id.
//
// All methods are pure: they never modify the receiver and return a new Cart.
type Cart []CartLine

// NewCartLine snapshots a product into a line with the given quantity.
func NewCartLine(p *Product, quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		ImageURL:  p.ImageURL,
		Price:     p.Price,
		Quantity:  quantity,
	}
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}

	return slices.Clone(c)
}

// Index returns the position of the line for productID, or -1.
func (c Cart) Index(productID string) int {
	return slices.IndexFunc(c, func(l CartLine) bool { return l.ProductID == productID })
}

// Line returns the line for productID if present.
func (c Cart) Line(productID string) (CartLine, bool) {
	if i := c.Index(productID); i >= 0 {
		return c[i], true
	}

	return CartLine{}, false
}

// Add increments the existing line for the product by quantity, or appends a new one.
func (c Cart) Add(p *Product, quantity int) Cart {
	next := c.Clone()
	if i := next.Index(p.ID); i >= 0 {
		next[i].Quantity += quantity

		return next
	}

	return append(next, NewCartLine(p, quantity))
}

// Remove drops the line for productID. Absent ids leave the cart unchanged.
func (c Cart) Remove(productID string) Cart {
	return slices.DeleteFunc(c.Clone(), func(l CartLine) bool { return l.ProductID == productID })
}

// SetQuantity sets the quantity of an existing line. A quantity below one
// removes the line; an unknown product id never creates one.
func (c Cart) SetQuantity(productID string, quantity int) Cart {
	if quantity < 1 {
		return c.Remove(productID)
	}

	next := c.Clone()
	if i := next.Index(productID); i >= 0 {
		next[i].Quantity = quantity
	}

	return next
}

// Total returns the sum of price * quantity over all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c {
		total = total.Add(l.Subtotal())
	}

	return total
}

// ItemCount returns the sum of quantities.
func (c Cart) ItemCount() int {
	count := 0
	for _, l := range c {
		count += l.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Valid reports whether every line has a product id, a positive quantity and
// a non-negative price, and no product id repeats.
func (c Cart) Valid() bool {
	seen := make(map[string]struct{}, len(c))
	for _, l := range c {
		if l.ProductID == "" || l.Quantity < 1 || l.Price.IsNegative() {
			return false
		}
		if _, dup := seen[l.ProductID]; dup {
			return false
		}
		seen[l.ProductID] = struct{}{}
	}

	return true
}
