package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Receipt(t *testing.T) {
	tests := []struct {
		name        string
		orderID     string
		output      *usecase.ReceiptOutput
		err         error
		wantStatus  int
		wantHeaders map[string]string
	}{
		{
			name:    "latest order",
			orderID: "",
			output: &usecase.ReceiptOutput{
				Order:    &entity.Order{ID: "o_1"},
				FileName: "receipt_o_1.pdf",
				Location: "file:///tmp/receipts/receipt_o_1.pdf",
				PDF:      []byte("%PDF-1.3"),
			},
			wantStatus: http.StatusOK,
			wantHeaders: map[string]string{
				echo.HeaderContentType:        "application/pdf",
				echo.HeaderContentDisposition: `attachment; filename="receipt_o_1.pdf"`,
				HeaderReceiptLocation:         "file:///tmp/receipts/receipt_o_1.pdf",
			},
		},
		{
			name:       "foreign order",
			orderID:    "o_9",
			err:        domainerrors.ErrNotFound.WithDetails("order o_9"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderUC := mockUsecase.NewMockOrderUsecase(t)
			orderUC.EXPECT().Receipt(mock.Anything, tt.orderID).Return(tt.output, tt.err).Once()
			h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

			c, rec := newJSONContext(newEcho(), http.MethodGet, "/orders/receipt", "")
			if tt.orderID != "" {
				withID(c, tt.orderID)
			}

			require.NoError(t, h.Receipt(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			for key, want := range tt.wantHeaders {
				assert.Equal(t, want, rec.Header().Get(key), key)
			}
			if tt.output != nil {
				assert.Equal(t, tt.output.PDF, rec.Body.Bytes())
			}
		})
	}
}

func TestOrderHandler_PaymentSuccess(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	orderUC.EXPECT().LatestOrder(mock.Anything).Return(&entity.Order{ID: "o_2", Status: "paid"}, nil).Once()
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/payment-success", "")

	require.NoError(t, h.PaymentSuccess(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Payment successful", env.Message)
	assert.JSONEq(t, `"o_2"`, jsonField(t, env.Data, "_id"))
}
