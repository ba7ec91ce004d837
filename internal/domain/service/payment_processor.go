package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentConfirmation is the processor's answer to a successful confirmation.
type PaymentConfirmation struct {
	PaymentIntentID string
	Status          string
}

// PaymentProcessor drives the payment processor's client-side confirmation.
type PaymentProcessor interface {
	// ConfirmCardPayment confirms the intent identified by clientSecret with the
	// entered card. Declines are reported as a PaymentDeclinedError; the same
	// client secret may be confirmed again afterwards.
	ConfirmCardPayment(ctx context.Context, clientSecret string, card entity.CardDetails) (*PaymentConfirmation, error)
}
