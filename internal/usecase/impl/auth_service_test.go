package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service    *authService
	api        *mockSvc.MockAuthAPI
	identities *mockRepo.MockIdentityStore
	checkouts  *mockRepo.MockCheckoutStore
	cart       *mockUsecase.MockCartUsecase
	tokens     *mockSvc.MockTokenInspector
	confirmer  *mockSvc.MockConfirmer
	now        time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	api := mockSvc.NewMockAuthAPI(t)
	identities := mockRepo.NewMockIdentityStore(t)
	checkouts := mockRepo.NewMockCheckoutStore(t)
	cart := mockUsecase.NewMockCartUsecase(t)
	tokens := mockSvc.NewMockTokenInspector(t)
	confirmer := mockSvc.NewMockConfirmer(t)

	srv := NewAuthService(AuthServiceParams{
		API:        api,
		Identities: identities,
		Checkouts:  checkouts,
		Cart:       cart,
		Tokens:     tokens,
		Confirmer:  confirmer,
		Logger:     newDiscardLogger(),
	}).(*authService)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	return authServiceFixtures{
		service:    srv,
		api:        api,
		identities: identities,
		checkouts:  checkouts,
		cart:       cart,
		tokens:     tokens,
		confirmer:  confirmer,
		now:        now,
	}
}

func shopper() *entity.Identity {
	return &entity.Identity{Token: "tok_user", Name: "Asha", Email: "asha@example.com", Role: entity.RoleUser}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := shopper()

	fx.api.EXPECT().Login(ctx, "asha@example.com", "secret").Return(identity, nil)
	fx.identities.EXPECT().Save(ctx, identity).Return(nil)

	got, err := fx.service.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestAuthService_Login_ValidationBlocksNetwork(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LoginInput
	}{
		{name: "empty", input: usecase.LoginInput{}},
		{name: "bad email", input: usecase.LoginInput{Email: "not-an-email", Password: "x"}},
		{name: "missing password", input: usecase.LoginInput{Email: "asha@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Login(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
			fx.api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_BackendRejects(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.api.EXPECT().Login(ctx, "asha@example.com", "wrong").
		Return(nil, domainerrors.NewBackendError(401, "Invalid credentials"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", domainerrors.UserMessage(err))
	fx.identities.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DefaultsRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := shopper()

	fx.api.EXPECT().Register(ctx, service.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
		Role:     entity.RoleUser,
	}).Return(identity, nil)
	fx.identities.EXPECT().Save(ctx, identity).Return(nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
		Role:     entity.Role("owner"),
	})

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestAuthService_Logout_Declined(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.confirmer.EXPECT().Confirm(ctx, usecase.LogoutPrompt).Return(false, nil)

	done, err := fx.service.Logout(ctx, true)

	require.NoError(t, err)
	assert.False(t, done)
	fx.identities.AssertNotCalled(t, "Clear", mock.Anything)
	fx.cart.AssertNotCalled(t, "ClearCart", mock.Anything)
}

func TestAuthService_Logout_ConfirmedClearsEverything(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.confirmer.EXPECT().Confirm(ctx, usecase.LogoutPrompt).Return(true, nil)
	fx.identities.EXPECT().Load(ctx).Return(shopper(), nil)
	fx.api.EXPECT().Logout(ctx).Return(nil)
	fx.identities.EXPECT().Clear(ctx).Return(nil)
	fx.cart.EXPECT().ClearCart(ctx).Return(nil)
	fx.checkouts.EXPECT().ClearOrderID(ctx).Return(nil)

	done, err := fx.service.Logout(ctx, true)

	require.NoError(t, err)
	assert.True(t, done)
}

func TestAuthService_EndSession_BackendFailureIsIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identities.EXPECT().Load(ctx).Return(shopper(), nil)
	fx.api.EXPECT().Logout(ctx).Return(domainerrors.NewNetworkError(errors.New("offline")))
	fx.identities.EXPECT().Clear(ctx).Return(nil)
	fx.cart.EXPECT().ClearCart(ctx).Return(nil)
	fx.checkouts.EXPECT().ClearOrderID(ctx).Return(errors.New("gone"))

	done, err := fx.service.Logout(ctx, false)

	require.NoError(t, err)
	assert.True(t, done)
}

func TestAuthService_EndSession_WithoutIdentitySkipsBackend(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identities.EXPECT().Load(ctx).Return(nil, nil)
	fx.identities.EXPECT().Clear(ctx).Return(nil)
	fx.cart.EXPECT().ClearCart(ctx).Return(nil)
	fx.checkouts.EXPECT().ClearOrderID(ctx).Return(nil)

	require.NoError(t, fx.service.EndSession(ctx))
	fx.api.AssertNotCalled(t, "Logout", mock.Anything)
}

func TestAuthService_EndSession_ClearFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identities.EXPECT().Load(ctx).Return(nil, nil)
	fx.identities.EXPECT().Clear(ctx).Return(errors.New("read-only"))

	err := fx.service.EndSession(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear identity")
}

func TestAuthService_CurrentIdentity(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(fx authServiceFixtures)
		wantNil bool
		wantErr bool
	}{
		{
			name: "absent",
			setup: func(fx authServiceFixtures) {
				fx.identities.EXPECT().Load(mock.Anything).Return(nil, nil)
			},
			wantNil: true,
		},
		{
			name: "valid token",
			setup: func(fx authServiceFixtures) {
				exp := fx.now.Add(time.Hour)
				fx.identities.EXPECT().Load(mock.Anything).Return(shopper(), nil)
				fx.tokens.EXPECT().Inspect("tok_user").Return(&service.TokenInfo{ExpiresAt: &exp}, nil)
			},
		},
		{
			name: "expired token",
			setup: func(fx authServiceFixtures) {
				exp := fx.now.Add(-time.Minute)
				fx.identities.EXPECT().Load(mock.Anything).Return(shopper(), nil)
				fx.tokens.EXPECT().Inspect("tok_user").Return(&service.TokenInfo{ExpiresAt: &exp}, nil)
			},
			wantNil: true,
		},
		{
			name: "opaque token",
			setup: func(fx authServiceFixtures) {
				fx.identities.EXPECT().Load(mock.Anything).Return(shopper(), nil)
				fx.tokens.EXPECT().Inspect("tok_user").Return(nil, errors.New("token is malformed"))
			},
		},
		{
			name: "storage failure",
			setup: func(fx authServiceFixtures) {
				fx.identities.EXPECT().Load(mock.Anything).Return(nil, errors.New("io"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			identity, err := fx.service.CurrentIdentity(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, identity == nil)
		})
	}
}

func TestAuthService_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.identities.EXPECT().Load(ctx).Return(nil, nil)

		_, err := fx.service.Authorize(ctx, entity.RoleUser)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("expired token is anonymous", func(t *testing.T) {
		fx := createTestAuthService(t)
		exp := fx.now.Add(-time.Second)
		fx.identities.EXPECT().Load(ctx).Return(shopper(), nil)
		fx.tokens.EXPECT().Inspect("tok_user").Return(&service.TokenInfo{ExpiresAt: &exp}, nil)

		_, err := fx.service.Authorize(ctx, entity.RoleUser)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("wrong role", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.identities.EXPECT().Load(ctx).Return(shopper(), nil)
		fx.tokens.EXPECT().Inspect("tok_user").Return(&service.TokenInfo{}, nil)

		_, err := fx.service.Authorize(ctx, entity.RoleAdmin)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin cannot shop", func(t *testing.T) {
		fx := createTestAuthService(t)
		admin := &entity.Identity{Token: "tok_admin", Role: entity.RoleAdmin}
		fx.identities.EXPECT().Load(ctx).Return(admin, nil)
		fx.tokens.EXPECT().Inspect("tok_admin").Return(&service.TokenInfo{}, nil)

		_, err := fx.service.Authorize(ctx, entity.RoleUser)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("matching role", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.identities.EXPECT().Load(ctx).Return(shopper(), nil)
		fx.tokens.EXPECT().Inspect("tok_user").Return(&service.TokenInfo{}, nil)

		identity, err := fx.service.Authorize(ctx, entity.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", identity.Email)
	})
}
