package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	auth      *mockUsecase.MockAuthUsecase
	orders    *mockSvc.MockOrderAPI
	checkouts *mockRepo.MockCheckoutStore
	renderer  *mockSvc.MockReceiptRenderer
	archive   *mockSvc.MockReceiptArchive
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	auth := mockUsecase.NewMockAuthUsecase(t)
	orders := mockSvc.NewMockOrderAPI(t)
	checkouts := mockRepo.NewMockCheckoutStore(t)
	renderer := mockSvc.NewMockReceiptRenderer(t)
	archive := mockSvc.NewMockReceiptArchive(t)

	service := NewOrderService(OrderServiceParams{
		Auth:      auth,
		Orders:    orders,
		Checkouts: checkouts,
		Renderer:  renderer,
		Archive:   archive,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		auth:      auth,
		orders:    orders,
		checkouts: checkouts,
		renderer:  renderer,
		archive:   archive,
	}
}

func (fx orderServiceFixtures) asShopper() {
	fx.auth.EXPECT().Authorize(mock.Anything, entity.RoleUser).Return(shopper(), nil)
}

func orderHistory() []*entity.Order {
	day := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	return []*entity.Order{
		{ID: "o_1", TotalAmount: decimal.NewFromInt(100), CreatedAt: day},
		{ID: "o_2", TotalAmount: decimal.NewFromInt(250), CreatedAt: day.Add(24 * time.Hour)},
		{ID: "o_3", TotalAmount: decimal.NewFromInt(40), CreatedAt: day.Add(48 * time.Hour)},
	}
}

func TestOrderService_MyOrders_RequiresShopper(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.auth.EXPECT().Authorize(ctx, entity.RoleUser).Return(nil, domainerrors.ErrUnauthenticated)

	_, err := fx.service.MyOrders(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	fx.orders.AssertNotCalled(t, "MyOrders", mock.Anything)
}

func TestOrderService_LatestOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		storedID  string
		stored    bool
		storeErr  error
		wantOrder string
	}{
		{name: "matches session order", storedID: "o_2", stored: true, wantOrder: "o_2"},
		{name: "unknown session order falls back to last", storedID: "o_9", stored: true, wantOrder: "o_3"},
		{name: "no session order", wantOrder: "o_3"},
		{name: "session storage failure", storeErr: errors.New("gone"), wantOrder: "o_3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.asShopper()
			fx.orders.EXPECT().MyOrders(ctx).Return(orderHistory(), nil)
			fx.checkouts.EXPECT().LoadOrderID(ctx).Return(tt.storedID, tt.stored, tt.storeErr)

			order, err := fx.service.LatestOrder(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, order.ID)
		})
	}
}

func TestOrderService_LatestOrder_NoOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.asShopper()
	fx.orders.EXPECT().MyOrders(ctx).Return([]*entity.Order{}, nil)

	_, err := fx.service.LatestOrder(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_Receipt(t *testing.T) {
	ctx := context.Background()
	pdf := []byte("%PDF-1.3 fake")

	t.Run("latest order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.asShopper()
		fx.orders.EXPECT().MyOrders(ctx).Return(orderHistory(), nil)
		fx.checkouts.EXPECT().LoadOrderID(ctx).Return("o_1", true, nil)
		fx.renderer.EXPECT().Render(mock.MatchedBy(func(o *entity.Order) bool { return o.ID == "o_1" })).Return(pdf, nil)
		fx.archive.EXPECT().Save(ctx, "receipt_o_1.pdf", pdf).Return("mem://receipt_o_1.pdf", nil)

		out, err := fx.service.Receipt(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, "o_1", out.Order.ID)
		assert.Equal(t, "receipt_o_1.pdf", out.FileName)
		assert.Equal(t, "mem://receipt_o_1.pdf", out.Location)
		assert.Equal(t, pdf, out.PDF)
	})

	t.Run("explicit order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.asShopper()
		fx.orders.EXPECT().MyOrders(ctx).Return(orderHistory(), nil)
		fx.renderer.EXPECT().Render(mock.Anything).Return(pdf, nil)
		fx.archive.EXPECT().Save(ctx, "receipt_o_2.pdf", pdf).Return("file:///tmp/receipt_o_2.pdf", nil)

		out, err := fx.service.Receipt(ctx, "o_2")

		require.NoError(t, err)
		assert.Equal(t, "o_2", out.Order.ID)
	})

	t.Run("foreign order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.asShopper()
		fx.orders.EXPECT().MyOrders(ctx).Return(orderHistory(), nil)

		_, err := fx.service.Receipt(ctx, "o_other")

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		fx.renderer.AssertNotCalled(t, "Render", mock.Anything)
	})

	t.Run("archive failure", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.asShopper()
		fx.orders.EXPECT().MyOrders(ctx).Return(orderHistory(), nil)
		fx.renderer.EXPECT().Render(mock.Anything).Return(pdf, nil)
		fx.archive.EXPECT().Save(ctx, "receipt_o_3.pdf", pdf).Return("", errors.New("bucket closed"))

		_, err := fx.service.Receipt(ctx, "o_3")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to archive receipt")
	})
}
