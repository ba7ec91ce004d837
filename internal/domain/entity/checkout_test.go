package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from CheckoutState
		to   CheckoutState
		want bool
	}{
		{CheckoutStateUninitialized, CheckoutStateIntentCreated, true},
		{CheckoutStateUninitialized, CheckoutStateFailed, true},
		{CheckoutStateUninitialized, CheckoutStatePaymentConfirmed, false},
		{CheckoutStateIntentCreated, CheckoutStatePaymentConfirmed, true},
		{CheckoutStateIntentCreated, CheckoutStateOrderConfirmed, false},
		{CheckoutStatePaymentConfirmed, CheckoutStateOrderConfirmed, true},
		{CheckoutStatePaymentConfirmed, CheckoutStateFailed, true},
		{CheckoutStateOrderConfirmed, CheckoutStateFailed, false},
		{CheckoutStateFailed, CheckoutStateIntentCreated, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestCheckoutSession_TransitionTo(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := start.Add(time.Minute)
	session := NewCheckoutSession("inr", start)

	assert.Equal(t, CheckoutStateUninitialized, session.State)
	assert.False(t, session.TransitionTo(CheckoutStateOrderConfirmed, later))
	assert.Equal(t, start, session.UpdatedAt)

	assert.True(t, session.TransitionTo(CheckoutStateIntentCreated, later))
	assert.Equal(t, later, session.UpdatedAt)
	assert.False(t, session.State.IsTerminal())
}

func TestCheckoutSession_Fail(t *testing.T) {
	now := time.Now()
	session := NewCheckoutSession("inr", now)

	session.Fail("cart is empty", now)

	assert.Equal(t, CheckoutStateFailed, session.State)
	assert.Equal(t, "cart is empty", session.LastError)
	assert.True(t, session.State.IsTerminal())
	assert.False(t, session.TransitionTo(CheckoutStateIntentCreated, now))
}

func TestIdentity_HasRole(t *testing.T) {
	var anonymous *Identity
	admin := &Identity{Role: RoleAdmin}

	assert.False(t, anonymous.HasRole(RoleUser))
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.HasRole(RoleUser))
	assert.Equal(t, "receipt_o_1.pdf", (&Order{ID: "o_1"}).ReceiptFileName())
}
