package auth

import (
	"context"
	"testing"
	"time"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/pkg/hash"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestService(userRepo *mocks.UserRepository, tokenRepo *mocks.RefreshTokenRepository) *Service {
	tokenService := jwt.NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour)
	return NewService(userRepo, tokenRepo, tokenService, logger.NewNoop())
}

// TestService_Register тестирует регистрацию
func TestService_Register(t *testing.T) {
	req := &RegisterRequest{
		Email:    "ivan@example.com",
		Password: "secret-password",
		FullName: "Ivan Petrov",
	}

	t.Run("успешная регистрация", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, req.Email).
			Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == req.Email &&
				u.IsActive &&
				u.PasswordHash != "" &&
				u.PasswordHash != req.Password
		})).Return(nil)

		svc := newTestService(userRepo, new(mocks.RefreshTokenRepository))
		user, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, req.Email, user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("email уже занят", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, req.Email).
			Return(&domain.User{Email: req.Email}, nil)

		svc := newTestService(userRepo, new(mocks.RefreshTokenRepository))
		_, err := svc.Register(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

// TestService_Login тестирует вход
func TestService_Login(t *testing.T) {
	password := "secret-password"
	passwordHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: passwordHash,
		FullName:     "Ivan Petrov",
		IsActive:     true,
	}

	t.Run("успешный вход сохраняет refresh token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
		userRepo.On("UpdateLastLogin", mock.Anything, user.ID).Return(nil)

		tokenRepo := new(mocks.RefreshTokenRepository)
		tokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(rt *domain.RefreshToken) bool {
			return rt.UserID == user.ID && rt.TokenHash != ""
		})).Return(nil)

		svc := newTestService(userRepo, tokenRepo)
		resp, err := svc.Login(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: password,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		svc := newTestService(userRepo, new(mocks.RefreshTokenRepository))
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("неизвестный email не раскрывается", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := newTestService(userRepo, new(mocks.RefreshTokenRepository))
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "ghost@example.com",
			Password: password,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("неактивный пользователь", func(t *testing.T) {
		inactive := *user
		inactive.IsActive = false

		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(&inactive, nil)

		svc := newTestService(userRepo, new(mocks.RefreshTokenRepository))
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: password,
		})

		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})
}

// TestService_Refresh тестирует одноразовость refresh токенов
func TestService_Refresh(t *testing.T) {
	tokenService := jwt.NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour)

	user := &domain.User{
		ID:       uuid.New(),
		Email:    "ivan@example.com",
		IsActive: true,
	}

	pair, err := tokenService.GenerateTokenPair(user)
	require.NoError(t, err)
	tokenHash := jwt.HashToken(pair.RefreshToken)

	t.Run("успешное обновление отзывает старый токен", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		tokenRepo := new(mocks.RefreshTokenRepository)
		tokenRepo.On("GetByTokenHash", mock.Anything, tokenHash).
			Return(&domain.RefreshToken{
				UserID:    user.ID,
				TokenHash: tokenHash,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)
		tokenRepo.On("Revoke", mock.Anything, tokenHash).Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(userRepo, tokenRepo)
		resp, err := svc.Refresh(context.Background(), &RefreshRequest{
			RefreshToken: pair.RefreshToken,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("отозванный токен не принимается", func(t *testing.T) {
		revokedAt := time.Now()

		tokenRepo := new(mocks.RefreshTokenRepository)
		tokenRepo.On("GetByTokenHash", mock.Anything, tokenHash).
			Return(&domain.RefreshToken{
				UserID:    user.ID,
				TokenHash: tokenHash,
				ExpiresAt: time.Now().Add(time.Hour),
				RevokedAt: &revokedAt,
			}, nil)

		svc := newTestService(new(mocks.UserRepository), tokenRepo)
		_, err := svc.Refresh(context.Background(), &RefreshRequest{
			RefreshToken: pair.RefreshToken,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
		tokenRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("неизвестный токен", func(t *testing.T) {
		tokenRepo := new(mocks.RefreshTokenRepository)
		tokenRepo.On("GetByTokenHash", mock.Anything, tokenHash).
			Return(nil, domain.ErrInvalidToken)

		svc := newTestService(new(mocks.UserRepository), tokenRepo)
		_, err := svc.Refresh(context.Background(), &RefreshRequest{
			RefreshToken: pair.RefreshToken,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("мусорная строка вместо токена", func(t *testing.T) {
		svc := newTestService(new(mocks.UserRepository), new(mocks.RefreshTokenRepository))
		_, err := svc.Refresh(context.Background(), &RefreshRequest{
			RefreshToken: "not-a-jwt",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

// TestService_Logout тестирует идемпотентность logout
func TestService_Logout(t *testing.T) {
	refreshToken := "some-refresh-token"
	tokenHash := jwt.HashToken(refreshToken)

	t.Run("успешный logout", func(t *testing.T) {
		tokenRepo := new(mocks.RefreshTokenRepository)
		tokenRepo.On("Revoke", mock.Anything, tokenHash).Return(nil)

		svc := newTestService(new(mocks.UserRepository), tokenRepo)
		err := svc.Logout(context.Background(), refreshToken)

		assert.NoError(t, err)
	})

	t.Run("повторный logout не ошибка", func(t *testing.T) {
		tokenRepo := new(mocks.RefreshTokenRepository)
		tokenRepo.On("Revoke", mock.Anything, tokenHash).
			Return(domain.ErrInvalidToken)

		svc := newTestService(new(mocks.UserRepository), tokenRepo)
		err := svc.Logout(context.Background(), refreshToken)

		assert.NoError(t, err)
	})
}
