package store

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// OrderIDKey is the session-scoped key holding the order id of the
// checkout in progress.
const OrderIDKey = "orderId"

type checkoutStore struct {
	session repository.Storage
}

// NewCheckoutStore creates a CheckoutStore over session-scoped storage.
func NewCheckoutStore(session repository.Storage) repository.CheckoutStore {
	return &checkoutStore{session: session}
}

func (s *checkoutStore) SaveOrderID(ctx context.Context, orderID string) error {
	return errors.Wrap(s.session.Set(ctx, OrderIDKey, []byte(orderID)), "failed to save order id")
}

func (s *checkoutStore) LoadOrderID(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.session.Get(ctx, OrderIDKey)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read order id")
	}
	if !ok || len(raw) == 0 {
		return "", false, nil
	}

	return string(raw), true, nil
}

func (s *checkoutStore) ClearOrderID(ctx context.Context) error {
	return errors.Wrap(s.session.Remove(ctx, OrderIDKey), "failed to clear order id")
}
