package qrcode

import (
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const typeOrder = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// OrderQRData is the JSON payload encoded in a receipt QR code
type OrderQRData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the receipt section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.Receipt == nil {
		return NewQRCodeService(0, "")
	}

	return NewQRCodeService(cfg.Receipt.QRSize, cfg.Receipt.ErrorCorrectionLevel)
}

// GenerateOrderQR renders the order id as a PNG QR code
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, errors.New("order id is empty")
	}

	jsonData, err := json.Marshal(OrderQRData{OrderID: orderID, Type: typeOrder})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR returns the order id from scanned QR text
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	var data OrderQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != typeOrder {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return "", errors.New("QR code carries no order id")
	}

	return data.OrderID, nil
}
