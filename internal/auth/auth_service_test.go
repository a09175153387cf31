package auth_test

import (
	"context"
	"testing"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth"
	autherrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth/errors"
	authMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	mockUser := &auth.User{
		ID:       uuid.New(),
		Email:    "brand@example.com",
		Password: string(pw),
		Role:     "BRAND",
		IsActive: true,
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		token, refreshToken, resp, err := service.Login(ctx, mockUser.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, mockUser.Email, resp.Email)
		assert.Equal(t, "BRAND", resp.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, _, _, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.Error(t, err)
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("Deactivated Account", func(t *testing.T) {
		inactive := *mockUser
		inactive.IsActive = false

		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(&inactive, nil)

		_, _, _, err := service.Login(ctx, mockUser.Email, password)
		assert.Equal(t, autherrors.ErrForbidden, err)
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success Register Usher", func(t *testing.T) {
		req := auth.RegisterRequest{
			Name:     "Sara Adel",
			Email:    "Sara@Example.com",
			Password: "password123",
			Role:     "USHER",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *auth.User) error {
				// Email should be normalized before it hits the database.
				assert.Equal(t, "sara@example.com", user.Email)
				assert.Equal(t, "USHER", user.Role)
				assert.True(t, user.IsActive)
				assert.NotEqual(t, req.Password, user.Password)
				return nil
			})

		resp, err := service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "sara@example.com", resp.Email)
		assert.Equal(t, "USHER", resp.Role)
	})

	t.Run("Error Register - Duplicate Email", func(t *testing.T) {
		req := auth.RegisterRequest{
			Name:     "Dup",
			Email:    "duplicate@example.com",
			Password: "password123",
			Role:     "BRAND",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

		_, err := service.Register(ctx, req)
		assert.Error(t, err)
		assert.Equal(t, autherrors.ErrEmailAlreadyRegistered, err)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Garbage Token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not-a-jwt")
		assert.Equal(t, autherrors.ErrInvalidRefreshToken, err)
	})

	t.Run("Valid Token Round Trip", func(t *testing.T) {
		password := "password123"
		pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		user := &auth.User{
			ID:       uuid.New(),
			Email:    "usher@example.com",
			Password: string(pw),
			Role:     "USHER",
			IsActive: true,
		}

		mockRepo.EXPECT().
			GetByEmail(ctx, user.Email).
			Return(user, nil)

		_, refreshToken, _, err := service.Login(ctx, user.Email, password)
		assert.NoError(t, err)

		mockRepo.EXPECT().
			GetByID(ctx, user.ID).
			Return(user, nil)

		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, user.Email, resp.Email)
	})
}
