// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartSummary is what cart surfaces render: the lines plus derived totals.
type CartSummary struct {
	Lines     entity.Cart     `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// NewCartSummary derives totals from cart.
func NewCartSummary(cart entity.Cart) *CartSummary {
	return &CartSummary{
		Lines:     cart.Clone(),
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

// CartUsecase defines the cart operations. Every mutation persists the new
// cart and then emits the cartUpdated signal.
type CartUsecase interface {
	// AddToCart increments the product's line by quantity, creating it if needed.
	AddToCart(ctx context.Context, product *entity.Product, quantity int) (entity.Cart, error)

	// RemoveFromCart drops the product's line; an absent id is not an error.
	RemoveFromCart(ctx context.Context, productID string) (entity.Cart, error)

	// UpdateQuantity sets the line's quantity; below one it removes the line.
	UpdateQuantity(ctx context.Context, productID string, quantity int) (entity.Cart, error)

	ClearCart(ctx context.Context) error

	// GetCart reads the persisted cart with its total and item count.
	GetCart(ctx context.Context) (*CartSummary, error)

	// Subscribe registers fn for cartUpdated and returns its unsubscribe func.
	Subscribe(fn func()) (unsubscribe func())
}
