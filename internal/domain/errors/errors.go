package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so that
// WithDetails copies still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidationFailed blocks a form submission locally; no network call is made.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid input",
		"",
	)

	// ErrEmptyCart is returned when checkout is entered with nothing in the cart.
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"cart is empty, nothing to checkout",
		"",
	)

	ErrIllegalTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_CHECKOUT_TRANSITION",
		"illegal transition of checkout state",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"please log in",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// NewValidationError returns ErrValidationFailed with the given details.
func NewValidationError(format string, args ...any) *BaseError {
	return ErrValidationFailed.WithDetails(fmt.Sprintf(format, args...))
}

// NetworkError means the request never reached the backend (or the processor).
// The cause is surfaced verbatim.
type NetworkError struct {
	err error
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{err: err}
}

func (e *NetworkError) Error() string {
	return errors.Wrap(e.err, "network error").Error()
}

func (e *NetworkError) Unwrap() error { return e.err }

func (e *NetworkError) HTTPCode() int { return http.StatusServiceUnavailable }

func (e *NetworkError) ErrorCode() string { return "NETWORK_ERROR" }

func (e *NetworkError) Message() string { return e.err.Error() }

func (e *NetworkError) Details() string { return "" }

// BackendError is a non-2xx answer from the backend.
type BackendError struct {
	status  int
	message string
}

// NewBackendError builds a BackendError. An empty message falls back to a
// generic text derived from the status.
func NewBackendError(status int, message string) *BackendError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	return &BackendError{status: status, message: message}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.status, e.message)
}

// Status returns the backend's HTTP status.
func (e *BackendError) Status() int { return e.status }

func (e *BackendError) HTTPCode() int { return e.status }

func (e *BackendError) ErrorCode() string { return "BACKEND_ERROR" }

func (e *BackendError) Message() string { return e.message }

func (e *BackendError) Details() string { return "" }

// PaymentDeclinedError is a processor-reported failure such as a declined
// card. The shopper may re-enter card details against the same intent.
type PaymentDeclinedError struct {
	message string
	code    string
}

// NewPaymentDeclinedError carries the processor's human-readable message.
func NewPaymentDeclinedError(message, code string) *PaymentDeclinedError {
	if message == "" {
		message = "payment was declined"
	}

	return &PaymentDeclinedError{message: message, code: code}
}

func (e *PaymentDeclinedError) Error() string {
	if e.code != "" {
		return fmt.Sprintf("payment declined (%s): %s", e.code, e.message)
	}

	return "payment declined: " + e.message
}

// DeclineCode returns the processor code, when one was reported.
func (e *PaymentDeclinedError) DeclineCode() string { return e.code }

func (e *PaymentDeclinedError) HTTPCode() int { return http.StatusPaymentRequired }

func (e *PaymentDeclinedError) ErrorCode() string { return "PAYMENT_DECLINED" }

func (e *PaymentDeclinedError) Message() string { return e.message }

func (e *PaymentDeclinedError) Details() string { return e.code }

// StateInconsistencyError means the processor captured the payment but the
// backend never marked the order paid. It must not be retried automatically.
type StateInconsistencyError struct {
	orderID         string
	paymentIntentID string
	err             error
}

// NewStateInconsistencyError records which order and intent are out of sync.
func NewStateInconsistencyError(orderID, paymentIntentID string, err error) *StateInconsistencyError {
	return &StateInconsistencyError{orderID: orderID, paymentIntentID: paymentIntentID, err: err}
}

func (e *StateInconsistencyError) Error() string {
	return fmt.Sprintf("payment %s captured but order %s not confirmed: %v", e.paymentIntentID, e.orderID, e.err)
}

func (e *StateInconsistencyError) Unwrap() error { return e.err }

// OrderID returns the backend order left unpaid.
func (e *StateInconsistencyError) OrderID() string { return e.orderID }

// PaymentIntentID returns the processor id of the captured payment.
func (e *StateInconsistencyError) PaymentIntentID() string { return e.paymentIntentID }

func (e *StateInconsistencyError) HTTPCode() int { return http.StatusConflict }

func (e *StateInconsistencyError) ErrorCode() string { return "STATE_INCONSISTENCY" }

func (e *StateInconsistencyError) Message() string { return "payment succeeded, contact support" }

func (e *StateInconsistencyError) Details() string {
	return fmt.Sprintf("order=%s payment_intent=%s", e.orderID, e.paymentIntentID)
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	_, ok := errors.AsType[*NetworkError](err)

	return ok
}

// IsPaymentDeclined reports whether err is a processor decline.
func IsPaymentDeclined(err error) bool {
	_, ok := errors.AsType[*PaymentDeclinedError](err)

	return ok
}

// IsStateInconsistency reports whether err needs manual intervention.
func IsStateInconsistency(err error) bool {
	_, ok := errors.AsType[*StateInconsistencyError](err)

	return ok
}

// AsBackendError extracts a BackendError from err's tree.
func AsBackendError(err error) (*BackendError, bool) {
	return errors.AsType[*BackendError](err)
}

// UserMessage returns the text a UI surface should show for err.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" && IsValidation(err) {
			return appErr.Message() + ": " + appErr.Details()
		}

		return appErr.Message()
	}

	return err.Error()
}
