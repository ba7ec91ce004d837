package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// checkoutEntry serializes payment submissions on one session.
type checkoutEntry struct {
	mu      sync.Mutex
	session *entity.CheckoutSession
}

// CheckoutHandler keeps the sessions of checkouts in progress, the way the
// checkout page holds its state while mounted.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*checkoutEntry
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
		sessions:   make(map[uuid.UUID]*checkoutEntry),
	}
}

// Begin handles POST /checkout. An empty cart answers 400 without any
// backend call.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	session, err := h.checkoutUC.Begin(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.mu.Lock()
	h.pruneLocked()
	h.sessions[session.ID] = &checkoutEntry{session: session}
	h.mu.Unlock()

	return response.Success(c, http.StatusCreated, session, "Checkout started")
}

// Get handles GET /checkout/:id.
func (h *CheckoutHandler) Get(c echo.Context) error {
	entry, err := h.lookup(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return response.Success(c, http.StatusOK, entry.session, "")
}

// Pay handles POST /checkout/:id/pay with the entered card.
func (h *CheckoutHandler) Pay(c echo.Context) error {
	entry, err := h.lookup(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var card entity.CardDetails
	if err := c.Bind(&card); err != nil {
		return response.BindingError(c, "Invalid card details")
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := h.checkoutUC.SubmitPayment(c.Request().Context(), entry.session, card); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry.session, "Order confirmed")
}

func (h *CheckoutHandler) lookup(rawID string) (*checkoutEntry, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.NewValidationError("invalid checkout id")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.sessions[id]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("checkout " + rawID)
	}

	return entry, nil
}

// pruneLocked drops finished sessions; a new checkout replaces them.
func (h *CheckoutHandler) pruneLocked() {
	for id, entry := range h.sessions {
		if entry.mu.TryLock() {
			terminal := entry.session.State.IsTerminal()
			entry.mu.Unlock()
			if terminal {
				delete(h.sessions, id)
			}
		}
	}
}
