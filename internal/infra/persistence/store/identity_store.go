package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// IdentityKey is the storage key holding {token, name, email, role}.
const IdentityKey = "user"

type identityStore struct {
	storage repository.Storage
	logger  *slog.Logger
}

// NewIdentityStore creates an IdentityStore over durable storage.
func NewIdentityStore(storage repository.Storage, logger *slog.Logger) repository.IdentityStore {
	return &identityStore{
		storage: storage,
		logger:  logger,
	}
}

func (s *identityStore) Load(ctx context.Context) (*entity.Identity, error) {
	raw, ok, err := s.storage.Get(ctx, IdentityKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity")
	}
	if !ok {
		return nil, nil
	}

	var identity entity.Identity
	if err := json.Unmarshal(raw, &identity); err != nil || identity.Token == "" {
		s.logger.Warn("Ignoring malformed identity", slog.Any("error", err))

		return nil, nil
	}

	return &identity, nil
}

func (s *identityStore) Save(ctx context.Context, identity *entity.Identity) error {
	if identity == nil {
		return errors.New("identity is nil")
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "failed to encode identity")
	}

	return errors.Wrap(s.storage.Set(ctx, IdentityKey, raw), "failed to write identity")
}

func (s *identityStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.storage.Remove(ctx, IdentityKey), "failed to clear identity")
}
