package repository

import "context"

// CheckoutStore keeps the order id of the checkout in progress in
// session-scoped storage, so the success page can find it after a refresh.
type CheckoutStore interface {
	SaveOrderID(ctx context.Context, orderID string) error

	// LoadOrderID returns the stored order id, if any.
	LoadOrderID(ctx context.Context) (string, bool, error)

	ClearOrderID(ctx context.Context) error
}
