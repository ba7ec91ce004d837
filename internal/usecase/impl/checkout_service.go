package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const defaultCurrency = "inr"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart      usecase.CartUsecase
	orders    service.OrderAPI
	processor service.PaymentProcessor
	checkouts repository.CheckoutStore
	metrics   service.MetricsRecorder
	currency  string
	now       func() time.Time
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart      usecase.CartUsecase
	Orders    service.OrderAPI
	Processor service.PaymentProcessor
	Checkouts repository.CheckoutStore
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := defaultCurrency
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &checkoutService{
		cart:      params.Cart,
		orders:    params.Orders,
		processor: params.Processor,
		checkouts: params.Checkouts,
		metrics:   params.Metrics,
		currency:  currency,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin performs uninitialized -> intent_created.
func (srv *checkoutService) Begin(ctx context.Context) (*entity.CheckoutSession, error) {
	session := entity.NewCheckoutSession(srv.currency, srv.now())
	logger := srv.log(ctx).With(slog.String("checkout_id", session.ID.String()))

	summary, err := srv.cart.GetCart(ctx)
	if err != nil {
		session.Fail(err.Error(), srv.now())

		return session, err
	}
	if summary.Lines.IsEmpty() {
		session.Fail(domainerrors.ErrEmptyCart.Message(), srv.now())
		srv.metrics.CheckoutOutcome(service.OutcomeEmptyCart)

		return session, domainerrors.ErrEmptyCart
	}

	session.CartSnapshot = summary.Lines.Clone()

	intent, err := srv.orders.CreatePayment(ctx, session.CartSnapshot, session.Currency)
	if err != nil {
		session.Fail(domainerrors.UserMessage(err), srv.now())
		srv.metrics.CheckoutOutcome(service.OutcomeIntentFailed)
		logger.Warn("Failed to create payment intent", slog.Any("error", err))

		return session, err
	}

	session.ClientSecret = intent.ClientSecret
	session.OrderID = intent.OrderID
	session.TransitionTo(entity.CheckoutStateIntentCreated, srv.now())

	if err := srv.checkouts.SaveOrderID(ctx, intent.OrderID); err != nil {
		logger.Warn("Failed to remember order id", slog.Any("error", err))
	}

	logger.Info("Payment intent created",
		slog.String("order_id", intent.OrderID),
		slog.Int("items", session.CartSnapshot.ItemCount()),
		slog.String("total", session.CartSnapshot.Total().String()),
	)

	return session, nil
}

// SubmitPayment performs intent_created -> payment_confirmed -> order_confirmed.
func (srv *checkoutService) SubmitPayment(ctx context.Context, session *entity.CheckoutSession, card entity.CardDetails) error {
	if session == nil {
		return domainerrors.NewValidationError("no checkout in progress")
	}
	if session.State != entity.CheckoutStateIntentCreated {
		return domainerrors.ErrIllegalTransition.WithDetails(
			fmt.Sprintf("cannot submit payment while %s", session.State),
		)
	}
	if err := validation.Struct(card); err != nil {
		return err
	}

	logger := srv.log(ctx).With(
		slog.String("checkout_id", session.ID.String()),
		slog.String("order_id", session.OrderID),
	)

	confirmation, err := srv.processor.ConfirmCardPayment(ctx, session.ClientSecret, card)
	if err != nil {
		// The intent is still open; the shopper may retry with other details.
		session.LastError = domainerrors.UserMessage(err)
		session.UpdatedAt = srv.now()

		if domainerrors.IsPaymentDeclined(err) {
			srv.metrics.CheckoutOutcome(service.OutcomePaymentDeclined)
			logger.Info("Payment declined", slog.String("reason", session.LastError))
		} else {
			srv.metrics.CheckoutOutcome(service.OutcomePaymentError)
			logger.Warn("Payment confirmation failed", slog.Any("error", err))
		}

		return err
	}

	session.LastError = ""
	session.PaymentIntentID = confirmation.PaymentIntentID
	session.TransitionTo(entity.CheckoutStatePaymentConfirmed, srv.now())

	if err := srv.orders.ConfirmPayment(ctx, confirmation.PaymentIntentID); err != nil {
		inconsistency := domainerrors.NewStateInconsistencyError(session.OrderID, confirmation.PaymentIntentID, err)
		session.Fail(inconsistency.Message(), srv.now())
		srv.metrics.CheckoutOutcome(service.OutcomeStateInconsistency)
		logger.Error("Payment captured but order not confirmed",
			slog.String("payment_intent_id", confirmation.PaymentIntentID),
			slog.Any("error", err),
		)

		return inconsistency
	}

	session.TransitionTo(entity.CheckoutStateOrderConfirmed, srv.now())
	srv.metrics.CheckoutOutcome(service.OutcomeOrderConfirmed)

	if err := srv.cart.ClearCart(ctx); err != nil {
		// Order is already paid; clearing is best-effort.
		logger.Error("Order confirmed but cart not cleared", slog.Any("error", err))
	}

	logger.Info("Order confirmed", slog.String("payment_intent_id", confirmation.PaymentIntentID))

	return nil
}
