package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
)

// ListProducts calls GET /products. Empty filter fields are omitted.
func (c *Client) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := url.Values{}
	if filter.Q != "" {
		query.Set("q", filter.Q)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", filter.MinPrice.String())
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", filter.MaxPrice.String())
	}

	var payloads []productPayload
	if err := c.do(ctx, request{method: http.MethodGet, path: "/products", query: query}, &payloads); err != nil {
		return nil, err
	}

	return toProducts(payloads)
}

// GetProduct calls GET /products/:id.
func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var payload productPayload
	if err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + url.PathEscape(id)}, &payload); err != nil {
		return nil, err
	}

	return payload.toProduct()
}
