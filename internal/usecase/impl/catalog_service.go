package impl

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	api service.CatalogAPI
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(api service.CatalogAPI) usecase.CatalogUsecase {
	return &catalogService{api: api}
}

func (srv *catalogService) Search(ctx context.Context, input usecase.SearchInput) ([]*entity.Product, error) {
	filter := entity.ProductFilter{
		Q:        strings.TrimSpace(input.Q),
		Category: strings.TrimSpace(input.Category),
	}

	var err error
	if filter.MinPrice, err = parsePriceBound("minPrice", input.MinPrice); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = parsePriceBound("maxPrice", input.MaxPrice); err != nil {
		return nil, err
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainerrors.NewValidationError("minPrice must not exceed maxPrice")
	}

	return srv.api.ListProducts(ctx, filter)
}

func (srv *catalogService) Product(ctx context.Context, id string) (*entity.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domainerrors.NewValidationError("product id is required")
	}

	return srv.api.GetProduct(ctx, id)
}

// parsePriceBound returns nil for a blank bound.
func parsePriceBound(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError("%s must be a number", field)
	}
	if value.IsNegative() {
		return nil, domainerrors.NewValidationError("%s must not be negative", field)
	}

	return &value, nil
}
