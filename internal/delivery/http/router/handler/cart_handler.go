package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CartHandler serves the cart page and the cart badge stream.
type CartHandler struct {
	cartUC    usecase.CartUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:    params.CartUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddItemRequest adds quantity units of a catalog product.
type AddItemRequest struct {
	ProductID string `json:"productId" form:"productId" validate:"required"`
	Quantity  int    `json:"quantity" form:"quantity" validate:"required"`
}

// UpdateQuantityRequest sets a line's quantity; below one removes it.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

// BadgeView is the payload of each cart badge event.
type BadgeView struct {
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	summary, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// AddItem handles POST /cart/items. Title and price are taken from the
// catalog, never from the request.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	product, err := h.catalogUC.Product(ctx, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddToCart(ctx, product, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewCartSummary(cart), "Added to cart")
}

// UpdateQuantity handles PATCH /cart/items/:id.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity")
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewCartSummary(cart), "")
}

// RemoveItem handles DELETE /cart/items/:id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.cartUC.RemoveFromCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewCartSummary(cart), "")
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewCartSummary(nil), "Cart cleared")
}

// Events handles GET /cart/events: a server-sent event stream that emits
// the badge once on connect and again after every cart mutation. The
// subscription lives exactly as long as the request.
func (h *CartHandler) Events(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	// One pending signal is enough: the badge is re-read on delivery.
	updates := make(chan struct{}, 1)
	unsubscribe := h.cartUC.Subscribe(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if err := h.writeBadge(c); err != nil {
		logger.Debug("Cart stream closed", slog.Any("error", err))

		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			if err := h.writeBadge(c); err != nil {
				logger.Debug("Cart stream closed", slog.Any("error", err))

				return nil
			}
		}
	}
}

func (h *CartHandler) writeBadge(c echo.Context) error {
	summary, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to read cart")
	}

	payload, err := json.Marshal(BadgeView{ItemCount: summary.ItemCount, Total: summary.Total})
	if err != nil {
		return errors.WithStack(err)
	}

	res := c.Response()
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", service.SignalCartUpdated, payload); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
