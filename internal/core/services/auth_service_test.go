// internal/core/services/auth_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sondurak/garage-be/internal/core/domain"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

const testJWTSecret = "test-secret-at-least-32-characters!!"

func newAuthServiceForTest(t *testing.T, ttl time.Duration) (*services.AuthService, *mocks.MockUserRepository, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewAuthService(users, cache, testJWTSecret, ttl, helpers.TestLogger())
	return service, users, cache
}

func hashedUser(t *testing.T, password string, overrides ...func(*domain.User)) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return helpers.CreateTestUser(append([]func(*domain.User){func(u *domain.User) {
		u.PasswordHash = string(hash)
	}}, overrides...)...)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues_token_for_valid_credentials", func(t *testing.T) {
		service, users, _ := newAuthServiceForTest(t, time.Hour)

		u := hashedUser(t, "correct-horse")
		users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)

		got, tokens, err := service.Login(context.Background(), u.Email, "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.WithinDuration(t, time.Now().Add(time.Hour), tokens.ExpiresAt, 5*time.Second)
	})

	t.Run("rejects_wrong_password", func(t *testing.T) {
		service, users, _ := newAuthServiceForTest(t, time.Hour)

		u := hashedUser(t, "correct-horse")
		users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)

		_, _, err := service.Login(context.Background(), u.Email, "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("rejects_unknown_email", func(t *testing.T) {
		service, users, _ := newAuthServiceForTest(t, time.Hour)

		users.EXPECT().FindByEmail(gomock.Any(), "ghost@sondurak.local").Return(nil, nil)

		_, _, err := service.Login(context.Background(), "ghost@sondurak.local", "whatever")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("rejects_inactive_account", func(t *testing.T) {
		service, users, _ := newAuthServiceForTest(t, time.Hour)

		u := hashedUser(t, "correct-horse", func(u *domain.User) { u.Active = false })
		users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)

		_, _, err := service.Login(context.Background(), u.Email, "correct-horse")
		assert.ErrorIs(t, err, services.ErrUserInactive)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("rejects_duplicate_email", func(t *testing.T) {
		service, users, _ := newAuthServiceForTest(t, time.Hour)

		existing := helpers.CreateTestUser()
		users.EXPECT().FindByEmail(gomock.Any(), existing.Email).Return(existing, nil)

		u := helpers.CreateTestUser()
		err := service.Register(context.Background(), u, "longenough")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		service, _, _ := newAuthServiceForTest(t, time.Hour)

		u := helpers.CreateTestUser()
		err := service.Register(context.Background(), u, "short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("hashes_password_and_saves", func(t *testing.T) {
		service, users, _ := newAuthServiceForTest(t, time.Hour)

		u := helpers.CreateTestUser()
		users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(nil, nil)
		users.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved *domain.User) error {
				assert.NotEmpty(t, saved.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("longenough")))
				return nil
			})

		require.NoError(t, service.Register(context.Background(), u, "longenough"))
	})
}

func TestAuthService_AuthenticateAndLogout(t *testing.T) {
	service, users, cache := newAuthServiceForTest(t, time.Hour)

	u := hashedUser(t, "correct-horse")
	users.EXPECT().FindByEmail(gomock.Any(), u.Email).Return(u, nil)

	_, tokens, err := service.Login(context.Background(), u.Email, "correct-horse")
	require.NoError(t, err)

	t.Run("authenticates_fresh_token", func(t *testing.T) {
		cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
		users.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)

		got, err := service.Authenticate(context.Background(), tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("logout_blacklists_jti", func(t *testing.T) {
		cache.EXPECT().
			SetWithTTL(gomock.Any(), gomock.Any(), "1", gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
				assert.Contains(t, key, "session:blacklist:")
				assert.Greater(t, ttl, 59*time.Minute)
				return nil
			})

		require.NoError(t, service.Logout(context.Background(), tokens.AccessToken))
	})

	t.Run("rejects_revoked_token", func(t *testing.T) {
		cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := service.Authenticate(context.Background(), tokens.AccessToken)
		assert.ErrorIs(t, err, services.ErrTokenRevoked)
	})

	t.Run("rejects_garbage_token", func(t *testing.T) {
		_, err := service.Authenticate(context.Background(), "not-a-token")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token")
	})
}
