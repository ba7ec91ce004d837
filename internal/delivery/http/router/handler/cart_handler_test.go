package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartHandlerFixtures struct {
	handler   *CartHandler
	cartUC    *mockUsecase.MockCartUsecase
	catalogUC *mockUsecase.MockCatalogUsecase
}

func createCartHandlerFixtures(t *testing.T) *cartHandlerFixtures {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return &cartHandlerFixtures{
		handler: NewCartHandler(CartHandlerParams{
			CartUC:    cartUC,
			CatalogUC: catalogUC,
			Logger:    newDiscardLogger(),
		}),
		cartUC:    cartUC,
		catalogUC: catalogUC,
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("uses the catalog product", func(t *testing.T) {
		fx := createCartHandlerFixtures(t)
		product := newProduct("p1", "Gel Pen", 120)
		fx.catalogUC.EXPECT().Product(mock.Anything, "p1").Return(product, nil).Once()
		fx.cartUC.EXPECT().AddToCart(mock.Anything, product, 2).
			Return(entity.Cart{}.Add(product, 2), nil).Once()

		c, rec := newJSONContext(newEcho(), http.MethodPost, "/cart/items",
			`{"productId":"p1","quantity":2,"title":"Free","price":"0"}`)

		require.NoError(t, fx.handler.AddItem(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.JSONEq(t, `240`, jsonField(t, env.Data, "total"))
		assert.JSONEq(t, `2`, jsonField(t, env.Data, "itemCount"))
	})

	t.Run("missing product id", func(t *testing.T) {
		fx := createCartHandlerFixtures(t)

		c, rec := newJSONContext(newEcho(), http.MethodPost, "/cart/items", `{"quantity":1}`)

		require.NoError(t, fx.handler.AddItem(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createCartHandlerFixtures(t)
		fx.catalogUC.EXPECT().Product(mock.Anything, "nope").
			Return(nil, domainerrors.NewBackendError(http.StatusNotFound, "Product not found")).Once()

		c, rec := newJSONContext(newEcho(), http.MethodPost, "/cart/items", `{"productId":"nope","quantity":1}`)

		require.NoError(t, fx.handler.AddItem(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeEnvelope(t, rec).Message)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	fx := createCartHandlerFixtures(t)
	fx.cartUC.EXPECT().UpdateQuantity(mock.Anything, "p1", 0).Return(entity.Cart{}, nil).Once()

	c, rec := newJSONContext(newEcho(), http.MethodPatch, "/cart/items/p1", `{"quantity":0}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, fx.handler.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `0`, jsonField(t, decodeEnvelope(t, rec).Data, "itemCount"))
}

func TestCartHandler_Events(t *testing.T) {
	fx := createCartHandlerFixtures(t)

	reads := make(chan struct{}, 4)
	var count atomic.Int32
	fx.cartUC.EXPECT().GetCart(mock.Anything).RunAndReturn(func(context.Context) (*usecase.CartSummary, error) {
		n := count.Add(1)
		reads <- struct{}{}

		return &usecase.CartSummary{ItemCount: int(n), Total: decimal.NewFromInt(int64(n) * 100)}, nil
	})

	notify := make(chan func(), 1)
	var unsubscribed atomic.Bool
	fx.cartUC.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(fn func()) func() {
		notify <- fn

		return func() { unsubscribed.Store(true) }
	}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/cart/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	done := make(chan error, 1)
	go func() { done <- fx.handler.Events(c) }()

	waitFor(t, reads)
	signal := <-notify
	signal()
	waitFor(t, reads)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("event stream did not stop after cancellation")
	}

	assert.True(t, unsubscribed.Load())
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: cartUpdated\n"))
	assert.Contains(t, body, `data: {"itemCount":1,"total":100}`)
	assert.Contains(t, body, `data: {"itemCount":2,"total":200}`)
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for cart read")
	}
}
