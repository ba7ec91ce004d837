package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, registration, logout and the navbar.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// IdentityView is the identity without its token.
type IdentityView struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

func toIdentityView(identity *entity.Identity) *IdentityView {
	if identity == nil {
		return nil
	}

	return &IdentityView{Name: identity.Name, Email: identity.Email, Role: identity.Role}
}

// NavbarView is what the navigation bar renders.
type NavbarView struct {
	Identity  *IdentityView `json:"identity"`
	IsAdmin   bool          `json:"isAdmin"`
	CartCount int           `json:"cartCount"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	identity, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityView(identity), "Logged in")
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	identity, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toIdentityView(identity), "Registered")
}

// Logout handles POST /logout. The page asks for confirmation before
// calling it, so no prompt is shown here.
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := h.authUC.Logout(c.Request().Context(), false); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Navbar handles GET /me.
func (h *AuthHandler) Navbar(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := h.authUC.CurrentIdentity(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.cartUC.GetCart(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NavbarView{
		Identity:  toIdentityView(identity),
		IsAdmin:   identity.IsAdmin(),
		CartCount: summary.ItemCount,
	}, "")
}
