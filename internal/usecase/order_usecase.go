package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReceiptOutput is a rendered and archived receipt.
type ReceiptOutput struct {
	Order    *entity.Order
	FileName string
	Location string
	PDF      []byte
}

// OrderUsecase covers order history and receipts.
type OrderUsecase interface {
	MyOrders(ctx context.Context) ([]*entity.Order, error)

	// LatestOrder returns the order of the checkout just completed in this
	// session, falling back to the most recent order.
	LatestOrder(ctx context.Context) (*entity.Order, error)

	// Receipt renders and archives the receipt of orderID, or of the latest
	// order when orderID is empty.
	Receipt(ctx context.Context, orderID string) (*ReceiptOutput, error)
}
