// Package kv provides the key/value backends behind client-side state:
// a file per key on disk, an in-process map, or redis.
package kv

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 5 * time.Second

// Params defines the dependencies for the durable storage provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewDurable selects the durable backend from config. It survives restarts
// unless the memory driver is configured.
func NewDurable(params Params) (repository.Storage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage config is missing")
	}

	switch cfg.Driver {
	case "", config.StorageDriverFile:
		params.Logger.Debug("Using file storage", slog.String("dir", cfg.Dir))

		return NewFileStorage(cfg.Dir)
	case config.StorageDriverMemory:
		params.Logger.Warn("Using memory storage, cart and identity will not survive restarts")

		return NewMemoryStorage(), nil
	case config.StorageDriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis storage requires storage.redis.addr")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, redisPingTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Debug("Using redis storage", slog.String("addr", cfg.Redis.Addr))

		return NewRedisStorage(client, cfg.Namespace), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// NewSession returns storage scoped to one process run, the analogue of a
// browser tab's session storage.
func NewSession() repository.Storage {
	return NewMemoryStorage()
}
