// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	// mu serializes load-modify-save so concurrent requests cannot drop
	// each other's writes.
	mu          sync.Mutex
	store       repository.CartStore
	broadcaster service.Broadcaster
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store       repository.CartStore
	Broadcaster service.Broadcaster
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:       params.Store,
		broadcaster: params.Broadcaster,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mutate applies op to the persisted cart, saves the result and then
// broadcasts. Subscribers never observe a signal before the write.
func (srv *cartService) mutate(ctx context.Context, operation string, op func(entity.Cart) entity.Cart) (entity.Cart, error) {
	srv.mu.Lock()
	cart, err := srv.store.Load(ctx)
	if err != nil {
		srv.mu.Unlock()

		return nil, errors.Wrap(err, "failed to load cart")
	}

	next := op(cart)
	if err := srv.store.Save(ctx, next); err != nil {
		srv.mu.Unlock()

		return nil, errors.Wrap(err, "failed to save cart")
	}
	srv.mu.Unlock()

	srv.broadcaster.Publish(service.SignalCartUpdated)
	srv.metrics.CartOperation(operation)

	srv.log(ctx).Debug("Cart updated",
		slog.String("operation", operation),
		slog.Int("lines", len(next)),
		slog.Int("items", next.ItemCount()),
	)

	return next.Clone(), nil
}

func (srv *cartService) AddToCart(ctx context.Context, product *entity.Product, quantity int) (entity.Cart, error) {
	if product == nil || product.ID == "" {
		return nil, domainerrors.NewValidationError("product is required")
	}
	if quantity < 1 {
		return nil, domainerrors.NewValidationError("quantity must be at least 1")
	}
	if product.Price.IsNegative() {
		return nil, domainerrors.NewValidationError("product %s has a negative price", product.ID)
	}

	return srv.mutate(ctx, service.CartOpAdd, func(cart entity.Cart) entity.Cart {
		return cart.Add(product, quantity)
	})
}

func (srv *cartService) RemoveFromCart(ctx context.Context, productID string) (entity.Cart, error) {
	return srv.mutate(ctx, service.CartOpRemove, func(cart entity.Cart) entity.Cart {
		return cart.Remove(productID)
	})
}

func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (entity.Cart, error) {
	if quantity < 1 {
		return srv.RemoveFromCart(ctx, productID)
	}

	return srv.mutate(ctx, service.CartOpUpdateQuantity, func(cart entity.Cart) entity.Cart {
		return cart.SetQuantity(productID, quantity)
	})
}

func (srv *cartService) ClearCart(ctx context.Context) error {
	_, err := srv.mutate(ctx, service.CartOpClear, func(entity.Cart) entity.Cart {
		return entity.Cart{}
	})

	return err
}

func (srv *cartService) GetCart(ctx context.Context) (*usecase.CartSummary, error) {
	cart, err := srv.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return usecase.NewCartSummary(cart), nil
}

func (srv *cartService) Subscribe(fn func()) func() {
	return srv.broadcaster.Subscribe(service.SignalCartUpdated, fn)
}
