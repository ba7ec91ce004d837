package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	auth      usecase.AuthUsecase
	orders    service.OrderAPI
	checkouts repository.CheckoutStore
	renderer  service.ReceiptRenderer
	archive   service.ReceiptArchive
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Auth      usecase.AuthUsecase
	Orders    service.OrderAPI
	Checkouts repository.CheckoutStore
	Renderer  service.ReceiptRenderer
	Archive   service.ReceiptArchive
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		auth:      params.Auth,
		orders:    params.Orders,
		checkouts: params.Checkouts,
		renderer:  params.Renderer,
		archive:   params.Archive,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) MyOrders(ctx context.Context) ([]*entity.Order, error) {
	if _, err := srv.auth.Authorize(ctx, entity.RoleUser); err != nil {
		return nil, err
	}

	return srv.orders.MyOrders(ctx)
}

func (srv *orderService) LatestOrder(ctx context.Context) (*entity.Order, error) {
	orders, err := srv.MyOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("no orders yet")
	}

	orderID, ok, err := srv.checkouts.LoadOrderID(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to read pending order id", slog.Any("error", err))
	}
	if ok {
		if order := findOrder(orders, orderID); order != nil {
			return order, nil
		}
	}

	return orders[len(orders)-1], nil
}

func (srv *orderService) Receipt(ctx context.Context, orderID string) (*usecase.ReceiptOutput, error) {
	var (
		order *entity.Order
		err   error
	)
	if orderID == "" {
		order, err = srv.LatestOrder(ctx)
	} else {
		order, err = srv.findByID(ctx, orderID)
	}
	if err != nil {
		return nil, err
	}

	pdf, err := srv.renderer.Render(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt")
	}

	name := order.ReceiptFileName()
	location, err := srv.archive.Save(ctx, name, pdf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to archive receipt")
	}

	srv.log(ctx).Info("Receipt generated",
		slog.String("order_id", order.ID),
		slog.String("location", location),
	)

	return &usecase.ReceiptOutput{
		Order:    order,
		FileName: name,
		Location: location,
		PDF:      pdf,
	}, nil
}

func (srv *orderService) findByID(ctx context.Context, orderID string) (*entity.Order, error) {
	orders, err := srv.MyOrders(ctx)
	if err != nil {
		return nil, err
	}
	if order := findOrder(orders, orderID); order != nil {
		return order, nil
	}

	return nil, domainerrors.ErrNotFound.WithDetails("order " + orderID)
}

func findOrder(orders []*entity.Order, id string) *entity.Order {
	for _, order := range orders {
		if order.ID == id {
			return order
		}
	}

	return nil
}
