package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a purchased line as recorded by the backend.
type OrderItem struct {
	ProductID string          `json:"product,omitempty"`
	Title     string          `json:"title"`
	Quantity  int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// Order is a backend order belonging to the current identity.
type Order struct {
	ID          string          `json:"_id"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ReceiptFileName is the document name of the order's receipt.
func (o *Order) ReceiptFileName() string {
	return "receipt_" + o.ID + ".pdf"
}
