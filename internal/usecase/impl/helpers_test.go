package impl

import (
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(currency string) *config.Config {
	return &config.Config{
		Payment: &config.PaymentConfig{
			Provider:       "stripe",
			PublishableKey: "pk_test_123",
			Currency:       currency,
		},
	}
}

func newProduct(id, title string, price int64) *entity.Product {
	return &entity.Product{
		ID:       id,
		Title:    title,
		Price:    decimal.NewFromInt(price),
		ImageURL: "/images/" + id + ".png",
	}
}
