package security_test

import (
	"strings"
	"testing"

	"go-empdir/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := security.NewPasswordHasher()

	t.Run("round trip", func(t *testing.T) {
		token, err := hasher.Hash("secret123")

		assert.NoError(t, err)
		assert.True(t, hasher.Verify("secret123", token))
		assert.False(t, hasher.Verify("secret124", token))
	})

	t.Run("token format", func(t *testing.T) {
		token, err := hasher.Hash("secret123")

		assert.NoError(t, err)
		parts := strings.Split(token, ".")
		assert.Len(t, parts, 3)
		assert.Equal(t, "100100", parts[0])
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, _ := hasher.Hash("secret123")
		second, _ := hasher.Hash("secret123")

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify("secret123", first))
		assert.True(t, hasher.Verify("secret123", second))
	})

	t.Run("malformed tokens verify as false", func(t *testing.T) {
		assert.False(t, hasher.Verify("secret123", ""))
		assert.False(t, hasher.Verify("secret123", "not-a-token"))
		assert.False(t, hasher.Verify("secret123", "abc.def.ghi"))
		assert.False(t, hasher.Verify("secret123", "-5.AAAA.BBBB"))
	})
}
