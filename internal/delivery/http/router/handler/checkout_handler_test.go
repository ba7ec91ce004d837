package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIntentSession() *entity.CheckoutSession {
	session := entity.NewCheckoutSession("usd", time.Now())
	session.CartSnapshot = entity.Cart{}.Add(newProduct("p1", "Notebook", 100), 1)
	session.OrderID = "o_1"
	session.ClientSecret = "pi_456_secret_abc"
	session.State = entity.CheckoutStateIntentCreated

	return session
}

func beginCheckout(t *testing.T, h *CheckoutHandler, e *echo.Echo) uuid.UUID {
	t.Helper()

	c, rec := newJSONContext(e, http.MethodPost, "/checkout", "")
	require.NoError(t, h.Begin(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var session entity.CheckoutSession
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &session))

	return session.ID
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c
}

func TestCheckoutHandler_Begin(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: newDiscardLogger()})

		failed := entity.NewCheckoutSession("usd", time.Now())
		failed.Fail(domainerrors.ErrEmptyCart.Message(), time.Now())
		checkoutUC.EXPECT().Begin(mock.Anything).Return(failed, domainerrors.ErrEmptyCart).Once()

		c, rec := newJSONContext(newEcho(), http.MethodPost, "/checkout", "")

		require.NoError(t, h.Begin(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMPTY_CART", decodeEnvelope(t, rec).Error.Code)
		assert.Empty(t, h.sessions)
	})

	t.Run("client secret stays server side", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: newDiscardLogger()})
		checkoutUC.EXPECT().Begin(mock.Anything).Return(newIntentSession(), nil).Once()

		c, rec := newJSONContext(newEcho(), http.MethodPost, "/checkout", "")

		require.NoError(t, h.Begin(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
		assert.Contains(t, rec.Body.String(), `"state":"intent_created"`)
	})
}

func TestCheckoutHandler_Pay(t *testing.T) {
	e := newEcho()
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: newDiscardLogger()})

	checkoutUC.EXPECT().Begin(mock.Anything).Return(newIntentSession(), nil).Once()
	id := beginCheckout(t, h, e)

	card := entity.CardDetails{PaymentMethod: "pm_card_chargeDeclined"}
	checkoutUC.EXPECT().SubmitPayment(mock.Anything, mock.Anything, card).
		RunAndReturn(func(_ context.Context, session *entity.CheckoutSession, _ entity.CardDetails) error {
			session.LastError = "Your card was declined."

			return domainerrors.NewPaymentDeclinedError("Your card was declined.", "card_declined")
		}).Once()

	c, rec := newJSONContext(e, http.MethodPost, "/checkout/"+id.String()+"/pay", `{"paymentMethod":"pm_card_chargeDeclined"}`)
	require.NoError(t, h.Pay(withID(c, id.String())))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "Your card was declined.", decodeEnvelope(t, rec).Message)

	card = entity.CardDetails{PaymentMethod: "pm_card_visa"}
	checkoutUC.EXPECT().SubmitPayment(mock.Anything, mock.Anything, card).
		RunAndReturn(func(_ context.Context, session *entity.CheckoutSession, _ entity.CardDetails) error {
			require.Equal(t, id, session.ID)
			session.PaymentIntentID = "pi_456"
			session.LastError = ""
			session.State = entity.CheckoutStateOrderConfirmed

			return nil
		}).Once()

	c, rec = newJSONContext(e, http.MethodPost, "/checkout/"+id.String()+"/pay", `{"paymentMethod":"pm_card_visa"}`)
	require.NoError(t, h.Pay(withID(c, id.String())))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"order_confirmed"`)

	// A new checkout drops the finished one.
	checkoutUC.EXPECT().Begin(mock.Anything).Return(newIntentSession(), nil).Once()
	beginCheckout(t, h, e)

	c, rec = newJSONContext(e, http.MethodGet, "/checkout/"+id.String(), "")
	require.NoError(t, h.Get(withID(c, id.String())))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutHandler_Lookup(t *testing.T) {
	h := NewCheckoutHandler(CheckoutHandlerParams{
		CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t),
		Logger:     newDiscardLogger(),
	})

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "malformed id", id: "not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "unknown id", id: uuid.NewString(), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(newEcho(), http.MethodGet, "/checkout/"+tt.id, "")

			require.NoError(t, h.Get(withID(c, tt.id)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
