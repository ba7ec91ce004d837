// Package store keeps the client state (cart, identity, checkout order id)
// on top of a key/value Storage.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// CartKey is the storage key holding the serialized cart.
const CartKey = "cart"

type cartStore struct {
	storage repository.Storage
	logger  *slog.Logger
}

// NewCartStore creates a CartStore over durable storage.
func NewCartStore(storage repository.Storage, logger *slog.Logger) repository.CartStore {
	return &cartStore{
		storage: storage,
		logger:  logger,
	}
}

func (s *cartStore) Load(ctx context.Context) (entity.Cart, error) {
	raw, ok, err := s.storage.Get(ctx, CartKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}
	if !ok {
		return entity.Cart{}, nil
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		s.logger.Warn("Discarding malformed cart", slog.Any("error", err))

		return entity.Cart{}, nil
	}
	if !cart.Valid() {
		s.logger.Warn("Discarding cart with invalid lines", slog.Int("lines", len(cart)))

		return entity.Cart{}, nil
	}

	return cart.Clone(), nil
}

func (s *cartStore) Save(ctx context.Context, cart entity.Cart) error {
	raw, err := json.Marshal(cart.Clone())
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.storage.Set(ctx, CartKey, raw); err != nil {
		return errors.Wrap(err, "failed to write cart")
	}

	return nil
}
