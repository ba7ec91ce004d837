package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string      `json:"name" form:"name" validate:"required"`
	Email    string      `json:"email" form:"email" validate:"required,email"`
	Password string      `json:"password" form:"password" validate:"required"`
	Role     entity.Role `json:"role" form:"role" validate:"omitempty,oneof=user admin"`
}

// LogoutPrompt is shown before an interactive logout.
const LogoutPrompt = "Are you sure you want to logout?"

// AuthUsecase manages the active identity.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.Identity, error)
	Register(ctx context.Context, input RegisterInput) (*entity.Identity, error)

	// Logout asks for confirmation first when confirm is set. It reports
	// whether the session was ended; a declined prompt changes nothing.
	Logout(ctx context.Context, confirm bool) (bool, error)

	// ConfirmLogout is the cancellable first phase of Logout.
	ConfirmLogout(ctx context.Context) (bool, error)

	// EndSession is the unconditional second phase: it notifies the backend
	// best-effort, then clears identity, cart and the pending order id.
	EndSession(ctx context.Context) error

	// CurrentIdentity returns the stored identity, or nil when absent or
	// its token has expired.
	CurrentIdentity(ctx context.Context) (*entity.Identity, error)

	// Authorize requires an identity with exactly role.
	Authorize(ctx context.Context, role entity.Role) (*entity.Identity, error)
}
