package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase drives one checkout session through its state machine.
type CheckoutUsecase interface {
	// Begin snapshots the cart and requests a payment intent. The returned
	// session is never nil; on error it is in the failed state.
	Begin(ctx context.Context) (*entity.CheckoutSession, error)

	// SubmitPayment confirms the session's intent with card, confirms the
	// order with the backend and clears the cart. A decline leaves the
	// session in intent_created so the shopper can try again.
	SubmitPayment(ctx context.Context, session *entity.CheckoutSession, card entity.CardDetails) error
}
