package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderReceiptLocation tells where the receipt was archived.
const HeaderReceiptLocation = "X-Receipt-Location"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order history, the payment success page and receipts.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// MyOrders handles GET /orders.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	orders, err := h.orderUC.MyOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// PaymentSuccess handles GET /payment-success.
func (h *OrderHandler) PaymentSuccess(c echo.Context) error {
	order, err := h.orderUC.LatestOrder(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Payment successful")
}

// Receipt handles GET /payment-success/receipt and GET /orders/:id/receipt,
// answering with the PDF as an attachment.
func (h *OrderHandler) Receipt(c echo.Context) error {
	out, err := h.orderUC.Receipt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+out.FileName+`"`)
	c.Response().Header().Set(HeaderReceiptLocation, out.Location)

	return c.Blob(http.StatusOK, "application/pdf", out.PDF)
}
