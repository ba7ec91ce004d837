package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// errorBody is the shape of a non-2xx body.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// authResponse is returned by both /auth/login and /auth/register.
type authResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// paymentItem is a cart line as the order endpoints expect it.
type paymentItem struct {
	Product string          `json:"product"`
	Title   string          `json:"title"`
	Price   decimal.Decimal `json:"price"`
	Qty     int             `json:"qty"`
}

type createPaymentRequest struct {
	Items    []paymentItem `json:"items"`
	Currency string        `json:"currency"`
}

type createPaymentResponse struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type uploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// productPayload is a product as the backend sends it. Price is kept raw so a
// quoted, null or missing value is rejected instead of becoming zero.
type productPayload struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

func (p *productPayload) toProduct() (*entity.Product, error) {
	if p.ID == "" {
		return nil, invalidProduct("", errors.New("_id is missing"))
	}

	price, err := parsePrice(p.Price)
	if err != nil {
		return nil, invalidProduct(p.ID, err)
	}

	return &entity.Product{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}, nil
}

func toProducts(payloads []productPayload) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(payloads))
	for i := range payloads {
		product, err := payloads[i].toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// parsePrice accepts a non-negative JSON number only.
func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return decimal.Zero, errors.New("price is missing")
	case bytes.Equal(raw, []byte("null")):
		return decimal.Zero, errors.New("price is null")
	case raw[0] == '"':
		return decimal.Zero, errors.New("price is a string, want a number")
	}

	price, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, errors.Errorf("price %s is not a number", raw)
	}
	if price.IsNegative() {
		return decimal.Zero, errors.Errorf("price %s is negative", price)
	}

	return price, nil
}

func invalidProduct(id string, cause error) *domainerrors.BackendError {
	if id == "" {
		return domainerrors.NewBackendError(http.StatusBadGateway, fmt.Sprintf("invalid product from backend: %v", cause))
	}

	return domainerrors.NewBackendError(http.StatusBadGateway, fmt.Sprintf("invalid product %s from backend: %v", id, cause))
}

func toPaymentItems(cart entity.Cart) []paymentItem {
	items := make([]paymentItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, paymentItem{
			Product: line.ProductID,
			Title:   line.Title,
			Price:   line.Price,
			Qty:     line.Quantity,
		})
	}

	return items
}

func (r *authResponse) toIdentity() *entity.Identity {
	role := entity.Role(r.Role)
	if !role.IsValid() {
		role = entity.RoleUser
	}

	return &entity.Identity{
		Token: r.Token,
		Name:  r.Name,
		Email: r.Email,
		Role:  role,
	}
}
