package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code identifying an order
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR extracts the order id from scanned QR payload text
	ParseOrderQR(qrData string) (string, error)
}
