package security_test

import (
	"testing"
	"time"

	"go-empdir/internal/domain"
	"go-empdir/internal/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := security.NewTokenService("unit-test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		userID := uuid.New()

		result, err := svc.Generate(userID, "jane@example.com", domain.RoleDirector)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)

		claims, err := svc.Validate(result.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, "Director", claims.Role)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := security.NewTokenService("another-secret", time.Hour)

		result, err := svc.Generate(uuid.New(), "jane@example.com", domain.RoleEmployee)
		assert.NoError(t, err)

		_, err = other.Validate(result.AccessToken)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := security.NewTokenService("unit-test-secret", -time.Minute)

		result, err := expired.Generate(uuid.New(), "jane@example.com", domain.RoleEmployee)
		assert.NoError(t, err)

		_, err = svc.Validate(result.AccessToken)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := svc.Validate("not.a.jwt")
		assert.Error(t, err)
	})
}
