package impl

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/broadcast"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/store"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	store       *mockRepo.MockCartStore
	broadcaster *mockSvc.MockBroadcaster
	metrics     *mockSvc.MockMetricsRecorder
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartStore := mockRepo.NewMockCartStore(t)
	broadcaster := mockSvc.NewMockBroadcaster(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	service := NewCartService(CartServiceParams{
		Store:       cartStore,
		Broadcaster: broadcaster,
		Metrics:     metrics,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		store:       cartStore,
		broadcaster: broadcaster,
		metrics:     metrics,
	}
}

// newWiredCartService runs the cart service over real in-memory storage and
// a real broadcaster.
func newWiredCartService(t *testing.T) (usecase.CartUsecase, service.Broadcaster) {
	t.Helper()

	logger := newDiscardLogger()
	broadcaster := broadcast.NewBroadcaster(logger)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().CartOperation(mock.Anything).Return().Maybe()

	svc := NewCartService(CartServiceParams{
		Store:       store.NewCartStore(kv.NewMemoryStorage(), logger),
		Broadcaster: broadcaster,
		Metrics:     metrics,
		Logger:      logger,
	})

	return svc, broadcaster
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWiredCartService(t)
	p1 := newProduct("p1", "Pen", 100)

	_, err := svc.AddToCart(ctx, p1, 2)
	require.NoError(t, err)

	cart, err := svc.AddToCart(ctx, p1, 1)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)

	summary, err := svc.GetCart(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(summary.Total))
	assert.Equal(t, 3, summary.ItemCount)
}

func TestCartService_AddToCart_PersistsBeforeBroadcast(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	p1 := newProduct("p1", "Pen", 100)

	var saved bool
	fx.store.EXPECT().Load(ctx).Return(entity.Cart{}, nil).Once()
	fx.store.EXPECT().Save(ctx, mock.AnythingOfType("entity.Cart")).
		Run(func(_ context.Context, cart entity.Cart) {
			assert.Equal(t, 1, cart.ItemCount())
			saved = true
		}).
		Return(nil).Once()
	fx.broadcaster.EXPECT().Publish(service.SignalCartUpdated).
		Run(func(string) {
			assert.True(t, saved, "signal must follow the write")
		}).
		Return().Once()
	fx.metrics.EXPECT().CartOperation(service.CartOpAdd).Return().Once()

	cart, err := fx.service.AddToCart(ctx, p1, 1)

	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestCartService_AddToCart_Validation(t *testing.T) {
	tests := []struct {
		name     string
		product  *entity.Product
		quantity int
	}{
		{name: "nil product", product: nil, quantity: 1},
		{name: "missing id", product: &entity.Product{Title: "Pen"}, quantity: 1},
		{name: "zero quantity", product: newProduct("p1", "Pen", 10), quantity: 0},
		{name: "negative quantity", product: newProduct("p1", "Pen", 10), quantity: -2},
		{name: "negative price", product: newProduct("p1", "Pen", -1), quantity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			_, err := fx.service.AddToCart(context.Background(), tt.product, tt.quantity)

			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
		})
	}
}

func TestCartService_SaveFailureDoesNotBroadcast(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.store.EXPECT().Load(ctx).Return(entity.Cart{}, nil)
	fx.store.EXPECT().Save(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.AddToCart(ctx, newProduct("p1", "Pen", 100), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save cart")
	fx.broadcaster.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestCartService_LoadFailure(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.store.EXPECT().Load(ctx).Return(nil, errors.New("unreadable"))

	_, err := fx.service.RemoveFromCart(ctx, "p1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load cart")
}

func TestCartService_RemoveFromCart_AbsentIDStillBroadcasts(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	existing := entity.Cart{}.Add(newProduct("p1", "Pen", 100), 1)

	fx.store.EXPECT().Load(ctx).Return(existing, nil)
	fx.store.EXPECT().Save(ctx, existing).Return(nil)
	fx.broadcaster.EXPECT().Publish(service.SignalCartUpdated).Return().Once()
	fx.metrics.EXPECT().CartOperation(service.CartOpRemove).Return()

	cart, err := fx.service.RemoveFromCart(ctx, "missing")

	require.NoError(t, err)
	assert.Equal(t, existing, cart)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets quantity", func(t *testing.T) {
		svc, _ := newWiredCartService(t)
		_, err := svc.AddToCart(ctx, newProduct("p1", "Pen", 100), 1)
		require.NoError(t, err)

		cart, err := svc.UpdateQuantity(ctx, "p1", 5)

		require.NoError(t, err)
		line, ok := cart.Line("p1")
		require.True(t, ok)
		assert.Equal(t, 5, line.Quantity)
	})

	t.Run("below one removes", func(t *testing.T) {
		svc, _ := newWiredCartService(t)
		_, err := svc.AddToCart(ctx, newProduct("p1", "Pen", 100), 1)
		require.NoError(t, err)

		cart, err := svc.UpdateQuantity(ctx, "p1", 0)

		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("unknown id creates nothing", func(t *testing.T) {
		svc, _ := newWiredCartService(t)

		cart, err := svc.UpdateQuantity(ctx, "ghost", 3)

		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()
	svc, broadcaster := newWiredCartService(t)

	_, err := svc.AddToCart(ctx, newProduct("p1", "Pen", 100), 2)
	require.NoError(t, err)

	signals := 0
	unsubscribe := broadcaster.Subscribe(service.SignalCartUpdated, func() { signals++ })
	defer unsubscribe()

	require.NoError(t, svc.ClearCart(ctx))

	summary, err := svc.GetCart(ctx)
	require.NoError(t, err)
	assert.True(t, summary.Lines.IsEmpty())
	assert.True(t, summary.Total.IsZero())
	assert.Equal(t, 1, signals)
}

func TestCartService_SubscriberSeesPersistedCart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWiredCartService(t)

	var observed int
	unsubscribe := svc.Subscribe(func() {
		summary, err := svc.GetCart(ctx)
		require.NoError(t, err)
		observed = summary.ItemCount
	})
	defer unsubscribe()

	_, err := svc.AddToCart(ctx, newProduct("p1", "Pen", 100), 4)
	require.NoError(t, err)

	assert.Equal(t, 4, observed)
}

func TestCartService_ReturnedCartIsACopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWiredCartService(t)

	cart, err := svc.AddToCart(ctx, newProduct("p1", "Pen", 100), 1)
	require.NoError(t, err)
	cart[0].Quantity = 99

	summary, err := svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ItemCount)
}

func TestCartService_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWiredCartService(t)
	p1 := newProduct("p1", "Pen", 10)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddToCart(ctx, p1, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	summary, err := svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, summary.ItemCount)
	assert.True(t, decimal.NewFromInt(200).Equal(summary.Total))
}
