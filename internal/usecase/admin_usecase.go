package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// ProductInput is the admin product form. Price arrives as text and must
// parse as a number.
type ProductInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price" validate:"required,numeric"`
	Category    string `json:"category" form:"category"`
	ImageURL    string `json:"imageUrl" form:"imageUrl" validate:"required"`
}

// DeletePrompt is shown before a product is deleted.
const DeletePrompt = "Delete product?"

// AdminUsecase defines admin-only product management.
type AdminUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UploadImage hosts an image and returns the URL to put in ProductInput.
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)

	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error)

	// DeleteProduct asks for confirmation when confirm is set and reports
	// whether the product was deleted.
	DeleteProduct(ctx context.Context, id string, confirm bool) (bool, error)
}
