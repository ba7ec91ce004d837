// Package receipt renders order receipts as PDF and archives them in a blob
// bucket.
package receipt

import (
	"bytes"
	"fmt"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	currencyLabel = "INR"
	dateLayout    = "02 Jan 2006 15:04"

	marginX     = 20.0
	itemIndentX = 24.0
	firstItemY  = 68.0
	lineHeight  = 8.0
	pageBottom  = 270.0
	qrSizeMM    = 40.0
)

type pdfRenderer struct {
	title string
	qr    service.QRCodeService
}

// NewPDFRenderer creates a renderer that embeds a QR code of the order id.
func NewPDFRenderer(cfg *config.Config, qr service.QRCodeService) service.ReceiptRenderer {
	title := "Receipt"
	if cfg.Receipt != nil && cfg.Receipt.Title != "" {
		title = cfg.Receipt.Title
	}

	return &pdfRenderer{title: title, qr: qr}
}

// ItemLines formats the numbered item lines of a receipt.
func ItemLines(order *entity.Order) []string {
	lines := make([]string, 0, len(order.Items))
	for i, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%d. %s x%d - %s %s", i+1, item.Title, item.Quantity, currencyLabel, item.Price.String()))
	}

	return lines
}

func (r *pdfRenderer) Render(order *entity.Order) ([]byte, error) {
	if order == nil || order.ID == "" {
		return nil, errors.New("cannot render receipt without an order id")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.title, true)
	pdf.SetCreationDate(order.CreatedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginX, 20, r.title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginX, 34, "Order ID: "+order.ID)
	pdf.Text(marginX, 42, "Date: "+order.CreatedAt.Local().Format(dateLayout))
	pdf.Text(marginX, 50, fmt.Sprintf("Total: %s %s", currencyLabel, order.TotalAmount.String()))

	if r.qr != nil {
		png, err := r.qr.GenerateOrderQR(order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render order QR")
		}

		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("order-qr", 190-qrSizeMM, 14, qrSizeMM, qrSizeMM, false, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(marginX, 60, "Items:")
	pdf.SetFont("Helvetica", "", 12)

	y := firstItemY
	for _, line := range ItemLines(order) {
		if y > pageBottom {
			pdf.AddPage()
			y = marginX
		}
		pdf.Text(itemIndentX, y, line)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write receipt PDF")
	}

	return buf.Bytes(), nil
}
