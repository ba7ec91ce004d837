package service

// Outcome labels recorded for checkout attempts.
const (
	OutcomeEmptyCart          = "empty_cart"
	OutcomeIntentFailed       = "intent_failed"
	OutcomePaymentDeclined    = "payment_declined"
	OutcomePaymentError       = "payment_error"
	OutcomeStateInconsistency = "state_inconsistency"
	OutcomeOrderConfirmed     = "order_confirmed"
)

// Cart operation labels.
const (
	CartOpAdd            = "add"
	CartOpRemove         = "remove"
	CartOpUpdateQuantity = "update_quantity"
	CartOpClear          = "clear"
)

// MetricsRecorder records storefront business events.
type MetricsRecorder interface {
	CartOperation(operation string)
	CheckoutOutcome(outcome string)
}
