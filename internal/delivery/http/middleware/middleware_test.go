package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/metrics"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGuardMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name         string
		identity     *entity.Identity
		authErr      error
		wantStatus   int
		wantLocation string
		wantNext     bool
	}{
		{
			name:         "anonymous goes to login",
			authErr:      domainerrors.ErrUnauthenticated,
			wantStatus:   http.StatusFound,
			wantLocation: LoginPath,
		},
		{
			name:         "wrong role goes home",
			authErr:      domainerrors.ErrForbidden.WithDetails("requires role user"),
			wantStatus:   http.StatusFound,
			wantLocation: HomePath,
		},
		{
			name:       "matching role passes",
			identity:   &entity.Identity{Name: "Asha", Role: entity.RoleUser},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mockUsecase.NewMockAuthUsecase(t)
			auth.EXPECT().Authorize(mock.Anything, entity.RoleUser).Return(tt.identity, tt.authErr)
			guard := NewGuardMiddleware(auth, discardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				assert.Equal(t, tt.identity, deliverycontext.Identity(c))

				return c.NoContent(http.StatusOK)
			}

			err := guard.RequireRole(entity.RoleUser)(next)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestGuardMiddleware_PropagatesStorageErrors(t *testing.T) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	auth.EXPECT().Authorize(mock.Anything, entity.RoleAdmin).Return(nil, errors.New("disk gone"))
	guard := NewGuardMiddleware(auth, discardLogger())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/products", nil), httptest.NewRecorder())

	err := guard.RequireRole(entity.RoleAdmin)(func(echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	require.EqualError(t, err, "disk gone")
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "validation keeps details",
			err:         domainerrors.NewValidationError("email is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "invalid input",
			wantDetails: "email is required",
		},
		{
			name:        "backend message surfaces",
			err:         errors.Wrap(domainerrors.NewBackendError(http.StatusConflict, "Product exists"), "create"),
			wantStatus:  http.StatusConflict,
			wantCode:    "BACKEND_ERROR",
			wantMessage: "Product exists",
		},
		{
			name:        "state inconsistency",
			err:         domainerrors.NewStateInconsistencyError("o_1", "pi_1", errors.New("boom")),
			wantStatus:  http.StatusConflict,
			wantCode:    "STATE_INCONSISTENCY",
			wantMessage: "payment succeeded, contact support",
			wantDetails: "order=o_1 payment_intent=pi_1",
		},
		{
			name:        "forbidden hides details",
			err:         domainerrors.ErrForbidden.WithDetails("requires role admin"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "FORBIDDEN",
			wantMessage: "access denied",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusNotFound, "not here"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "not here",
		},
		{
			name:        "unknown error",
			err:         errors.New("nil pointer somewhere"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(discardLogger())

	t.Run("reuses caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw.Process(func(c echo.Context) error {
			assert.Equal(t, "req-42", deliverycontext.RequestID(c))
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(NewMetricsMiddleware(m).Handle)
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.GET("/products/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(echo.Context) error { return domainerrors.ErrEmptyCart })

	for _, path := range []string{"/products/p1", "/products/p2", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP storefront_http_requests_total Total number of storefront HTTP requests
# TYPE storefront_http_requests_total counter
storefront_http_requests_total{method="GET",route="/boom",status_code="400"} 1
storefront_http_requests_total{method="GET",route="/products/:id",status_code="200"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "storefront_http_requests_total"))
}
