package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SearchInput is the raw catalog search form. Blank fields are ignored.
type SearchInput struct {
	Q        string `query:"q" form:"q"`
	Category string `query:"category" form:"category"`
	MinPrice string `query:"minPrice" form:"minPrice"`
	MaxPrice string `query:"maxPrice" form:"maxPrice"`
}

// CatalogUsecase is the public product browsing surface.
type CatalogUsecase interface {
	Search(ctx context.Context, input SearchInput) ([]*entity.Product, error)
	Product(ctx context.Context, id string) (*entity.Product, error)
}
