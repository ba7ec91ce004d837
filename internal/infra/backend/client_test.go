package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/store"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientFixtures struct {
	client     *Client
	identities repository.IdentityStore
	server     *httptest.Server
}

func newTestClient(t *testing.T, e *echo.Echo, breaker config.BreakerConfig) clientFixtures {
	t.Helper()

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	identities := store.NewIdentityStore(kv.NewMemoryStorage(), logger)

	cfg := &config.Config{Backend: &config.BackendConfig{
		BaseURL: server.URL + "/api",
		Timeout: 5 * time.Second,
		Breaker: breaker,
	}}

	client, err := New(Params{
		Config:     cfg,
		Logger:     logger,
		Identities: identities,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)

	return clientFixtures{client: client, identities: identities, server: server}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Params{Config: &config.Config{Backend: &config.BackendConfig{}}})
	assert.Error(t, err)
}

func TestClient_ListProducts_OmitsBlankFilters(t *testing.T) {
	e := echo.New()
	var gotQuery string
	e.GET("/api/products", func(c echo.Context) error {
		gotQuery = c.QueryString()

		return c.JSONBlob(http.StatusOK, []byte(`[{"_id":"p1","title":"Pen","price":100,"category":"pens"}]`))
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	minPrice := decimal.NewFromInt(50)
	products, err := fx.client.ListProducts(context.Background(), entity.ProductFilter{
		Category: "pens",
		MinPrice: &minPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "category=pens&minPrice=50", gotQuery)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(100)))
}

func TestClient_GetProduct(t *testing.T) {
	e := echo.New()
	e.GET("/api/products/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"_id": c.Param("id"), "title": "Notebook", "price": 49.5})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	product, err := fx.client.GetProduct(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "p2", product.ID)
	assert.Equal(t, "Notebook", product.Title)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("49.5")))
}

func TestClient_RejectsMalformedProducts(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "quoted price", body: `{"_id":"p1","title":"Pen","price":"12.50"}`, wantMsg: "price is a string"},
		{name: "null price", body: `{"_id":"p1","title":"Pen","price":null}`, wantMsg: "price is null"},
		{name: "missing price", body: `{"_id":"p1","title":"Pen"}`, wantMsg: "price is missing"},
		{name: "negative price", body: `{"_id":"p1","title":"Pen","price":-1}`, wantMsg: "price -1 is negative"},
		{name: "boolean price", body: `{"_id":"p1","title":"Pen","price":true}`, wantMsg: "not a number"},
		{name: "missing id", body: `{"title":"Pen","price":10}`, wantMsg: "_id is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/api/products/:id", func(c echo.Context) error {
				return c.JSONBlob(http.StatusOK, []byte(tt.body))
			})
			e.GET("/api/products", func(c echo.Context) error {
				return c.JSONBlob(http.StatusOK, []byte(`[{"_id":"ok","title":"Ok","price":1},`+tt.body+`]`))
			})
			fx := newTestClient(t, e, config.BreakerConfig{})
			ctx := context.Background()

			product, err := fx.client.GetProduct(ctx, "p1")
			assert.Nil(t, product)
			backendErr, ok := domainerrors.AsBackendError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadGateway, backendErr.Status())
			assert.Contains(t, backendErr.Message(), tt.wantMsg)

			products, err := fx.client.ListProducts(ctx, entity.ProductFilter{})
			assert.Nil(t, products)
			_, ok = domainerrors.AsBackendError(err)
			assert.True(t, ok)
		})
	}
}

func TestClient_BearerTokenFromIdentity(t *testing.T) {
	e := echo.New()
	var authHeader, requestID string
	e.GET("/api/orders/my-orders", func(c echo.Context) error {
		authHeader = c.Request().Header.Get("Authorization")
		requestID = c.Request().Header.Get("X-Request-Id")

		return c.JSONBlob(http.StatusOK, []byte(`[
			{"_id":"o1","items":[{"title":"Pen","qty":2,"price":10}],"totalAmount":20,"createdAt":"2026-01-02T03:04:05Z"}
		]`))
	})
	fx := newTestClient(t, e, config.BreakerConfig{})
	ctx := context.Background()

	_, err := fx.client.MyOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, authHeader)
	assert.NotEmpty(t, requestID)

	require.NoError(t, fx.identities.Save(ctx, &entity.Identity{Token: "tok-1", Role: entity.RoleUser}))

	orders, err := fx.client.MyOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", authHeader)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(20)))
}

func TestClient_Login(t *testing.T) {
	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error {
		var body loginRequest
		if err := c.Bind(&body); err != nil {
			return err
		}
		if body.Password != "secret" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		}

		return c.JSON(http.StatusOK, authResponse{Token: "tok", Name: "Asha", Email: body.Email, Role: "admin"})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	identity, err := fx.client.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{Token: "tok", Name: "Asha", Email: "asha@example.com", Role: entity.RoleAdmin}, identity)

	_, err = fx.client.Login(context.Background(), "asha@example.com", "wrong")
	backendErr, ok := domainerrors.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, backendErr.Status())
	assert.Equal(t, "Invalid credentials", backendErr.Message())
}

func TestClient_Register_DefaultsUnknownRole(t *testing.T) {
	e := echo.New()
	e.POST("/api/auth/register", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, authResponse{Token: "tok", Name: "Ravi", Email: "ravi@example.com"})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	identity, err := fx.client.Register(context.Background(), service.RegisterRequest{
		Name: "Ravi", Email: "ravi@example.com", Password: "pw", Role: entity.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, identity.Role)
}

func TestClient_CreatePayment_WireShape(t *testing.T) {
	e := echo.New()
	var body string
	e.POST("/api/orders/create-payment", func(c echo.Context) error {
		raw, _ := io.ReadAll(c.Request().Body)
		body = string(raw)

		return c.JSON(http.StatusOK, createPaymentResponse{ClientSecret: "cs_123", OrderID: "o_1"})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	cart := entity.Cart{{ProductID: "p1", Title: "Pen", Price: decimal.NewFromInt(100), Quantity: 3}}
	intent, err := fx.client.CreatePayment(context.Background(), cart, "inr")
	require.NoError(t, err)

	assert.Equal(t, &service.PaymentIntent{ClientSecret: "cs_123", OrderID: "o_1"}, intent)
	assert.JSONEq(t, `{"items":[{"product":"p1","title":"Pen","price":100,"qty":3}],"currency":"inr"}`, body)
}

func TestClient_CreatePayment_IncompleteResponse(t *testing.T) {
	e := echo.New()
	e.POST("/api/orders/create-payment", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"clientSecret": "cs_123"})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	_, err := fx.client.CreatePayment(context.Background(), entity.Cart{}, "inr")
	assert.Error(t, err)
}

func TestClient_ConfirmPayment(t *testing.T) {
	e := echo.New()
	var got confirmPaymentRequest
	e.POST("/api/orders/confirm-payment", func(c echo.Context) error {
		if err := c.Bind(&got); err != nil {
			return err
		}

		return c.NoContent(http.StatusOK)
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	require.NoError(t, fx.client.ConfirmPayment(context.Background(), "pi_456"))
	assert.Equal(t, "pi_456", got.PaymentIntentID)
}

func TestClient_BackendErrorWithoutMessage(t *testing.T) {
	e := echo.New()
	e.DELETE("/api/admin/product/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusForbidden)
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	err := fx.client.DeleteProduct(context.Background(), "p1")
	backendErr, ok := domainerrors.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, "request failed with status 403", backendErr.Message())
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	fx := newTestClient(t, echo.New(), config.BreakerConfig{})
	fx.server.Close()

	_, err := fx.client.ListProducts(context.Background(), entity.ProductFilter{})
	assert.True(t, domainerrors.IsNetwork(err))
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	e := echo.New()
	var hits atomic.Int32
	e.GET("/api/products", func(c echo.Context) error {
		hits.Add(1)

		return c.JSON(http.StatusBadGateway, map[string]string{"message": "upstream down"})
	})
	fx := newTestClient(t, e, config.BreakerConfig{ConsecutiveFailures: 2, OpenTimeout: time.Minute})
	ctx := context.Background()

	for range 2 {
		_, err := fx.client.ListProducts(ctx, entity.ProductFilter{})
		_, ok := domainerrors.AsBackendError(err)
		assert.True(t, ok)
	}

	_, err := fx.client.ListProducts(ctx, entity.ProductFilter{})
	assert.True(t, domainerrors.IsNetwork(err))
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	e := echo.New()
	e.GET("/api/products/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
	})
	fx := newTestClient(t, e, config.BreakerConfig{ConsecutiveFailures: 1, OpenTimeout: time.Minute})

	for range 3 {
		_, err := fx.client.GetProduct(context.Background(), "missing")
		backendErr, ok := domainerrors.AsBackendError(err)
		require.True(t, ok)
		assert.Equal(t, "Product not found", backendErr.Message())
	}
}

func TestClient_UploadImage(t *testing.T) {
	e := echo.New()
	e.POST("/api/admin/upload-image", func(c echo.Context) error {
		file, err := c.FormFile(ImageField)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "no image"})
		}

		return c.JSON(http.StatusOK, uploadImageResponse{ImageURL: "https://cdn.example.com/" + file.Filename})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})

	imageURL, err := fx.client.UploadImage(context.Background(), "pen.png", strings.NewReader("PNG"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/pen.png", imageURL)
}

func TestClient_CreateAndUpdateProduct(t *testing.T) {
	e := echo.New()
	var createBody string
	e.POST("/api/admin/product", func(c echo.Context) error {
		raw, _ := io.ReadAll(c.Request().Body)
		createBody = string(raw)

		var draft entity.ProductDraft
		if err := json.Unmarshal(raw, &draft); err != nil {
			return err
		}

		return c.JSON(http.StatusCreated, entity.Product{ID: "new", Title: draft.Title, Price: draft.Price, ImageURL: draft.ImageURL})
	})
	e.PUT("/api/admin/product/:id", func(c echo.Context) error {
		var draft entity.ProductDraft
		if err := c.Bind(&draft); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, entity.Product{ID: c.Param("id"), Title: draft.Title, Price: draft.Price})
	})
	fx := newTestClient(t, e, config.BreakerConfig{})
	ctx := context.Background()

	draft := &entity.ProductDraft{Title: "Pen", Price: decimal.NewFromInt(10), ImageURL: "https://cdn/x.png"}
	created, err := fx.client.CreateProduct(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)
	assert.Equal(t, "https://cdn/x.png", created.ImageURL)
	assert.True(t, created.Price.Equal(decimal.NewFromInt(10)))
	assert.JSONEq(t, `{"title":"Pen","description":"","price":10,"category":"","imageUrl":"https://cdn/x.png"}`, createBody)

	updated, err := fx.client.UpdateProduct(ctx, "p9", draft)
	require.NoError(t, err)
	assert.Equal(t, "p9", updated.ID)
}

func TestClient_Logout(t *testing.T) {
	e := echo.New()
	var called bool
	e.POST("/api/auth/logout", func(c echo.Context) error {
		called = c.Request().Header.Get("Authorization") == "Bearer tok"

		return c.NoContent(http.StatusNoContent)
	})
	fx := newTestClient(t, e, config.BreakerConfig{})
	ctx := context.Background()
	require.NoError(t, fx.identities.Save(ctx, &entity.Identity{Token: "tok"}))

	require.NoError(t, fx.client.Logout(ctx))
	assert.True(t, called)
}
