package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReceiptRenderer turns an order into a printable document.
type ReceiptRenderer interface {
	Render(order *entity.Order) ([]byte, error)
}

// ReceiptArchive stores rendered receipts and reports where they went.
type ReceiptArchive interface {
	Save(ctx context.Context, name string, data []byte) (location string, err error)
	Close() error
}
