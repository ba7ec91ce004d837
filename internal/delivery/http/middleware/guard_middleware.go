package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// LoginPath is where anonymous visitors of a guarded page are sent.
	LoginPath = "/login"
	// HomePath is where visitors with the wrong role are sent.
	HomePath = "/"
)

// GuardMiddleware admits a request only when the active identity carries
// the route's role. Protected handlers never run otherwise.
type GuardMiddleware struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(auth usecase.AuthUsecase, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{auth: auth, logger: logger}
}

// RequireRole redirects to LoginPath without an identity (or with an
// expired token) and to HomePath on a role mismatch.
func (m *GuardMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			identity, err := m.auth.Authorize(ctx, role)
			switch {
			case err == nil:
				deliverycontext.SetIdentity(c, identity)

				return next(c)
			case errors.Is(err, domainerrors.ErrUnauthenticated):
				return c.Redirect(http.StatusFound, LoginPath)
			case errors.Is(err, domainerrors.ErrForbidden):
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Role mismatch",
					slog.String("path", c.Request().URL.Path),
					slog.String("required", role.String()),
				)

				return c.Redirect(http.StatusFound, HomePath)
			default:
				return err
			}
		}
	}
}
