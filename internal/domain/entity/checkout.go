package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutState is the position of a checkout session in its state machine.
type CheckoutState string

const (
	CheckoutStateUninitialized    CheckoutState = "uninitialized"
	CheckoutStateIntentCreated    CheckoutState = "intent_created"
	CheckoutStatePaymentConfirmed CheckoutState = "payment_confirmed"
	CheckoutStateOrderConfirmed   CheckoutState = "order_confirmed"
	CheckoutStateFailed           CheckoutState = "failed"
)

var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutStateUninitialized:    {CheckoutStateIntentCreated, CheckoutStateFailed},
	CheckoutStateIntentCreated:    {CheckoutStatePaymentConfirmed, CheckoutStateFailed},
	CheckoutStatePaymentConfirmed: {CheckoutStateOrderConfirmed, CheckoutStateFailed},
}

// IsTerminal reports whether no further transition is possible.
func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutStateOrderConfirmed || s == CheckoutStateFailed
}

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}

// CanTransitionTo reports whether the state machine allows from -> to.
func CanTransitionTo(from, to CheckoutState) bool {
	for _, allowed := range checkoutTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// CardDetails is what the shopper enters on the payment form. PaymentMethod
// is a processor-issued card token (for example a Stripe "pm_..." id).
type CardDetails struct {
	PaymentMethod  string `json:"paymentMethod" validate:"required"`
	CardholderName string `json:"cardholderName,omitempty"`
}

// CheckoutSession tracks one pass through checkout. The cart snapshot is
// copied on entry and never follows later cart mutations.
type CheckoutSession struct {
	ID              uuid.UUID     `json:"id"`
	CartSnapshot    Cart          `json:"cartSnapshot"`
	Currency        string        `json:"currency"`
	ClientSecret    string        `json:"-"`
	OrderID         string        `json:"orderId,omitempty"`
	PaymentIntentID string        `json:"paymentIntentId,omitempty"`
	State           CheckoutState `json:"state"`
	LastError       string        `json:"lastError,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// NewCheckoutSession starts an uninitialized session.
func NewCheckoutSession(currency string, now time.Time) *CheckoutSession {
	return &CheckoutSession{
		ID:        uuid.New(),
		Currency:  currency,
		State:     CheckoutStateUninitialized,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransitionTo moves the session to the next state if allowed.
func (s *CheckoutSession) TransitionTo(next CheckoutState, now time.Time) bool {
	if !CanTransitionTo(s.State, next) {
		return false
	}
	s.State = next
	s.UpdatedAt = now

	return true
}

// Fail moves the session to failed and records the reason.
func (s *CheckoutSession) Fail(reason string, now time.Time) {
	s.State = CheckoutStateFailed
	s.LastError = reason
	s.UpdatedAt = now
}

