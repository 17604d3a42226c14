package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-empdir/internal/auth"
	autherrors "go-empdir/internal/auth/errors"
	"go-empdir/internal/domain"
	"go-empdir/internal/employee"
	"go-empdir/internal/security"

	employeeMock "go-empdir/internal/employee/mock"
	securityMock "go-empdir/internal/security/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authDeps struct {
	service auth.Service
	repo    *employeeMock.MockRepository
	hasher  *securityMock.MockPasswordHasher
	tokens  *securityMock.MockTokenService
}

func setupAuthTest(t *testing.T) *authDeps {
	ctrl := gomock.NewController(t)

	repo := employeeMock.NewMockRepository(ctrl)
	hasher := securityMock.NewMockPasswordHasher(ctrl)
	tokens := securityMock.NewMockTokenService(ctrl)

	return &authDeps{
		service: auth.NewService(repo, hasher, tokens),
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthTest(t)

		userID := uuid.New()
		expiresAt := time.Now().Add(time.Hour)
		stored := &employee.Employee{
			ID:        userID,
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "stored-hash",
			Role:      domain.RoleLeader,
		}

		deps.repo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(stored, nil)
		deps.hasher.EXPECT().
			Verify("secret123", "stored-hash").
			Return(true)
		deps.tokens.EXPECT().
			Generate(userID, "jane@example.com", domain.RoleLeader).
			Return(security.TokenResult{AccessToken: "signed-jwt", ExpiresAt: expiresAt}, nil)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, userID.String(), resp.ID)
		assert.Equal(t, "signed-jwt", resp.AccessToken)
		assert.Equal(t, "Leader", resp.Role)
		assert.WithinDuration(t, expiresAt, resp.ExpiresAt, time.Second)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupAuthTest(t)

		deps.repo.EXPECT().
			FindByEmail(ctx, "nobody@example.com").
			Return(nil, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupAuthTest(t)

		stored := &employee.Employee{
			ID:       uuid.New(),
			Email:    "jane@example.com",
			Password: "stored-hash",
			Role:     domain.RoleEmployee,
		}

		deps.repo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(stored, nil)
		deps.hasher.EXPECT().
			Verify("wrong", "stored-hash").
			Return(false)

		_, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("blank email rejected before lookup", func(t *testing.T) {
		deps := setupAuthTest(t)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "  ", Password: "secret123"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email is required")
	})

	t.Run("blank password rejected before lookup", func(t *testing.T) {
		deps := setupAuthTest(t)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: ""})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "password is required")
	})

	t.Run("repository error propagates", func(t *testing.T) {
		deps := setupAuthTest(t)

		deps.repo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(nil, errors.New("db down"))

		_, err := deps.service.Login(ctx, auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "secret123",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
