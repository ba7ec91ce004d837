package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore is the single source of truth for cart contents between runs.
type CartStore interface {
	// Load returns the persisted cart. Absent or malformed payloads yield an
	// empty cart and no error; only storage I/O failures are reported.
	Load(ctx context.Context) (entity.Cart, error)

	// Save overwrites the persisted cart.
	Save(ctx context.Context, cart entity.Cart) error
}
