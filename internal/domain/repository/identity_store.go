package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// IdentityStore persists the active identity and its token.
type IdentityStore interface {
	// Load returns the stored identity, or nil when absent or malformed.
	Load(ctx context.Context) (*entity.Identity, error)

	Save(ctx context.Context, identity *entity.Identity) error

	Clear(ctx context.Context) error
}
