// Package service defines interfaces for collaborators the storefront talks to.
// Concrete implementations live under internal/infra.
package service

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// PaymentIntent is what the backend returns when checkout starts. Both
// values are opaque to the client.
type PaymentIntent struct {
	ClientSecret string
	OrderID      string
}

// CatalogAPI covers the public product endpoints.
type CatalogAPI interface {
	// ListProducts calls GET /products with the non-empty filter fields.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// GetProduct calls GET /products/:id.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}

// AuthAPI covers account endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*entity.Identity, error)
	Register(ctx context.Context, req RegisterRequest) (*entity.Identity, error)

	// Logout notifies the backend that the token is no longer in use.
	Logout(ctx context.Context) error
}

// OrderAPI covers the checkout and order history endpoints.
type OrderAPI interface {
	// CreatePayment sends the cart snapshot and currency, returning the intent.
	CreatePayment(ctx context.Context, items entity.Cart, currency string) (*PaymentIntent, error)

	// ConfirmPayment marks the order paid using the processor-issued id.
	ConfirmPayment(ctx context.Context, paymentIntentID string) error

	// MyOrders lists the orders of the current identity, oldest first.
	MyOrders(ctx context.Context) ([]*entity.Order, error)
}

// AdminAPI covers admin-only product management and image hosting.
type AdminAPI interface {
	CreateProduct(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, draft *entity.ProductDraft) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// UploadImage posts a multipart image and returns its hosted URL.
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)
}
