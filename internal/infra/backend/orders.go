package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// CreatePayment calls POST /orders/create-payment.
func (c *Client) CreatePayment(ctx context.Context, items entity.Cart, currency string) (*service.PaymentIntent, error) {
	req, err := jsonRequest(http.MethodPost, "/orders/create-payment", createPaymentRequest{
		Items:    toPaymentItems(items),
		Currency: currency,
	})
	if err != nil {
		return nil, err
	}

	var resp createPaymentResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.ClientSecret == "" || resp.OrderID == "" {
		return nil, errors.New("create-payment response is missing clientSecret or orderId")
	}

	return &service.PaymentIntent{
		ClientSecret: resp.ClientSecret,
		OrderID:      resp.OrderID,
	}, nil
}

// ConfirmPayment calls POST /orders/confirm-payment.
func (c *Client) ConfirmPayment(ctx context.Context, paymentIntentID string) error {
	req, err := jsonRequest(http.MethodPost, "/orders/confirm-payment", confirmPaymentRequest{
		PaymentIntentID: paymentIntentID,
	})
	if err != nil {
		return err
	}

	return c.do(ctx, req, nil)
}

// MyOrders calls GET /orders/my-orders.
func (c *Client) MyOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.do(ctx, request{method: http.MethodGet, path: "/orders/my-orders"}, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}
