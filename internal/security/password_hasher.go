package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 32
	iterations = 100_100
)

//go:generate mockgen -source=password_hasher.go -destination=mock/password_hasher_mock.go -package=mock
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}

type pbkdf2Hasher struct{}

func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash derives a key from the password with a fresh random salt, so the
// same password never hashes to the same token twice. The token embeds
// the iteration count and salt: "iterations.salt.key", each part base64.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)

	return fmt.Sprintf(
		"%d.%s.%s",
		iterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the key with the parameters stored in the token and
// compares in constant time. Any malformed token verifies as false.
func (h *pbkdf2Hasher) Verify(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, ".")
	if len(parts) != 3 {
		return false
	}

	iters, err := strconv.Atoi(parts[0])
	if err != nil || iters <= 0 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	key, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, iters, len(key), sha256.New)

	return subtle.ConstantTimeCompare(key, computed) == 1
}
