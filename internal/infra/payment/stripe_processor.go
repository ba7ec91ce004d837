// Package payment confirms payments against the payment processor on the
// shopper's behalf, using only the publishable key and the client secret.
package payment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// ProviderStripe is the only supported payment provider.
const ProviderStripe = "stripe"

const secretSeparator = "_secret_"

// Params defines the dependencies of the payment processor
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger

	HTTPClient *http.Client `optional:"true"`
}

type stripeProcessor struct {
	intents paymentintent.Client
	logger  *slog.Logger
}

// NewStripeProcessor builds a PaymentProcessor backed by the Stripe API.
func NewStripeProcessor(params Params) (service.PaymentProcessor, error) {
	cfg := params.Config.Payment
	if cfg == nil {
		return nil, errors.New("payment config is missing")
	}
	if cfg.Provider != "" && cfg.Provider != ProviderStripe {
		return nil, errors.Errorf("unsupported payment provider %q", cfg.Provider)
	}
	if cfg.PublishableKey == "" {
		return nil, errors.New("payment.publishableKey is required")
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient: httpClient,
		// Confirmation is never retried; the shopper resubmits instead.
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if cfg.APIBaseURL != "" {
		backendConfig.URL = stripe.String(cfg.APIBaseURL)
	}

	return &stripeProcessor{
		intents: paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Key: cfg.PublishableKey,
		},
		logger: params.Logger,
	}, nil
}

// IntentIDFromSecret derives "pi_x" from a client secret "pi_x_secret_y".
func IntentIDFromSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, secretSeparator)
	if !found || id == "" {
		return "", errors.New("malformed client secret")
	}

	return id, nil
}

func (p *stripeProcessor) ConfirmCardPayment(ctx context.Context, clientSecret string, card entity.CardDetails) (*service.PaymentConfirmation, error) {
	intentID, err := IntentIDFromSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(card.PaymentMethod),
	}
	params.Context = ctx
	params.AddExtra("client_secret", clientSecret)

	intent, err := p.intents.Confirm(intentID, params)
	if err != nil {
		return nil, p.mapError(ctx, intentID, err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, domainerrors.NewPaymentDeclinedError("payment not completed", string(intent.Status))
	}

	return &service.PaymentConfirmation{
		PaymentIntentID: intent.ID,
		Status:          string(intent.Status),
	}, nil
}

// mapError turns a failed confirmation into a domain error. Only card errors
// are declines the shopper can fix by re-entering card details.
func (p *stripeProcessor) mapError(ctx context.Context, intentID string, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return domainerrors.NewNetworkError(err)
	}

	attrs := []any{
		slog.String("payment_intent_id", intentID),
		slog.String("type", string(stripeErr.Type)),
		slog.String("code", string(stripeErr.Code)),
		slog.Int("status", stripeErr.HTTPStatusCode),
	}

	switch {
	case stripeErr.Type == stripe.ErrorTypeCard:
		logger.Info("Payment declined by processor",
			append(attrs, slog.String("decline_code", string(stripeErr.DeclineCode)))...)

		code := string(stripeErr.DeclineCode)
		if code == "" {
			code = string(stripeErr.Code)
		}

		return domainerrors.NewPaymentDeclinedError(stripeErr.Msg, code)
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests || stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
		logger.Warn("Payment processor unavailable", attrs...)

		return domainerrors.NewNetworkError(errors.Wrap(err, "payment processor unavailable"))
	default:
		logger.Error("Payment processor rejected the request", attrs...)

		return errors.Wrap(err, "payment processor rejected the request")
	}
}
