package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	recorder := AsRecorder(m)

	recorder.CartOperation("add")
	recorder.CartOperation("add")
	recorder.CartOperation("clear")
	recorder.CheckoutOutcome(service.OutcomeOrderConfirmed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cartOperations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cartOperations.WithLabelValues("clear")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkoutOutcomes.WithLabelValues(service.OutcomeOrderConfirmed)))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.CartOperation("add")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.cartOperations.WithLabelValues("add")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.CartOperation("remove")
	m.ObserveHTTP("/cart", http.MethodGet, http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `storefront_cart_operations_total{operation="remove"} 1`)
	assert.Contains(t, string(body), `storefront_http_requests_total{method="GET",route="/cart",status_code="200"} 1`)
}
