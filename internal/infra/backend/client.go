// Package backend is the REST client for the storefront backend: catalog,
// accounts, orders and admin endpoints.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

const maxErrorBody = 64 << 10

// Params defines the dependencies of the backend client
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Identities repository.IdentityStore

	// HTTPClient replaces the instrumented default (tests).
	HTTPClient *http.Client `optional:"true"`
}

// Client talks to the backend. Every call runs through a circuit breaker;
// nothing is retried.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	breaker    *gobreaker.CircuitBreaker[*rawResponse]
	identities repository.IdentityStore
	logger     *slog.Logger
}

type rawResponse struct {
	status int
	body   []byte
}

// New creates the backend client from config.
func New(params Params) (*Client, error) {
	cfg := params.Config.Backend
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid backend.baseUrl")
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		baseURL:    base,
		http:       httpClient,
		breaker:    newBreaker(cfg.Breaker),
		identities: params.Identities,
		logger:     params.Logger,
	}, nil
}

func newBreaker(cfg config.BreakerConfig) *gobreaker.CircuitBreaker[*rawResponse] {
	return gobreaker.NewCircuitBreaker[*rawResponse](gobreaker.Settings{
		Name:    "backend",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cfg.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		// Client errors are the caller's fault, not the backend's.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if backendErr, ok := domainerrors.AsBackendError(err); ok {
				return backendErr.Status() < http.StatusInternalServerError
			}

			return false
		},
	})
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// jsonRequest encodes payload as the request body.
func jsonRequest(method, path string, payload any) (request, error) {
	req := request{method: method, path: path}
	if payload == nil {
		return req, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return req, errors.Wrapf(err, "failed to encode %s %s", method, path)
	}
	req.body = bytes.NewReader(raw)
	req.contentType = "application/json"

	return req, nil
}

// do sends req and decodes a 2xx body into out (when out is non-nil).
func (c *Client) do(ctx context.Context, req request, out any) error {
	resp, err := c.breaker.Execute(func() (*rawResponse, error) {
		return c.send(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return domainerrors.NewNetworkError(errors.Wrap(err, "backend unavailable"))
		}

		return err
	}

	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return errors.Wrapf(err, "malformed response from %s %s", req.method, req.path)
	}

	return nil
}

func (c *Client) send(ctx context.Context, req request) (*rawResponse, error) {
	endpoint := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), req.body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	identity, err := c.identities.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load identity")
	}
	if identity != nil && identity.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+identity.Token)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Debug("Backend request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewNetworkError(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domainerrors.NewNetworkError(errors.Wrap(err, "failed to read response"))
	}

	logger.Debug("Backend request",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", httpResp.StatusCode),
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, domainerrors.NewBackendError(httpResp.StatusCode, errorMessage(body))
	}

	return &rawResponse{status: httpResp.StatusCode, body: body}, nil
}

// errorMessage pulls the human-readable message out of an error body.
func errorMessage(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}

	return payload.Error
}
