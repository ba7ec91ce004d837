package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	api        service.AuthAPI
	identities repository.IdentityStore
	checkouts  repository.CheckoutStore
	cart       usecase.CartUsecase
	tokens     service.TokenInspector
	confirmer  service.Confirmer
	now        func() time.Time
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	API        service.AuthAPI
	Identities repository.IdentityStore
	Checkouts  repository.CheckoutStore
	Cart       usecase.CartUsecase
	Tokens     service.TokenInspector
	Confirmer  service.Confirmer
	Logger     *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		api:        params.API,
		identities: params.Identities,
		checkouts:  params.Checkouts,
		cart:       params.Cart,
		tokens:     params.Tokens,
		confirmer:  params.Confirmer,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Identity, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	identity, err := srv.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	return srv.activate(ctx, identity)
}

func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Identity, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	identity, err := srv.api.Register(ctx, service.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role.OrDefault(),
	})
	if err != nil {
		return nil, err
	}

	return srv.activate(ctx, identity)
}

// activate persists identity as the active one.
func (srv *authService) activate(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	if err := srv.identities.Save(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "failed to store identity")
	}

	srv.log(ctx).Info("Identity activated",
		slog.String("email", identity.Email),
		slog.String("role", identity.Role.String()),
	)

	return identity, nil
}

func (srv *authService) Logout(ctx context.Context, confirm bool) (bool, error) {
	if confirm {
		ok, err := srv.ConfirmLogout(ctx)
		if err != nil || !ok {
			return false, err
		}
	}

	if err := srv.EndSession(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (srv *authService) ConfirmLogout(ctx context.Context) (bool, error) {
	ok, err := srv.confirmer.Confirm(ctx, usecase.LogoutPrompt)
	if err != nil {
		return false, errors.Wrap(err, "logout confirmation failed")
	}

	return ok, nil
}

func (srv *authService) EndSession(ctx context.Context) error {
	logger := srv.log(ctx)

	identity, err := srv.identities.Load(ctx)
	if err != nil {
		logger.Warn("Failed to read identity before logout", slog.Any("error", err))
	}
	if identity != nil {
		// The token is still stored here, so the backend sees who is leaving.
		if err := srv.api.Logout(ctx); err != nil {
			logger.Warn("Backend logout failed, continuing locally", slog.Any("error", err))
		}
	}

	if err := srv.identities.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear identity")
	}
	if err := srv.cart.ClearCart(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	if err := srv.checkouts.ClearOrderID(ctx); err != nil {
		logger.Warn("Failed to clear pending order id", slog.Any("error", err))
	}

	logger.Info("Logged out")

	return nil
}

func (srv *authService) CurrentIdentity(ctx context.Context) (*entity.Identity, error) {
	identity, err := srv.identities.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity")
	}
	if identity == nil {
		return nil, nil
	}

	// Opaque tokens cannot be inspected and are trusted until the backend
	// rejects them.
	info, err := srv.tokens.Inspect(identity.Token)
	if err == nil && info.Expired(srv.now()) {
		srv.log(ctx).Debug("Stored token has expired", slog.String("email", identity.Email))

		return nil, nil
	}

	return identity, nil
}

func (srv *authService) Authorize(ctx context.Context, role entity.Role) (*entity.Identity, error) {
	identity, err := srv.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !identity.HasRole(role) {
		return nil, domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
	}

	return identity, nil
}
