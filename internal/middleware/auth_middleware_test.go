package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-empdir/internal/domain"
	"go-empdir/internal/middleware"
	"go-empdir/internal/security"
	"go-empdir/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(tokens security.TokenService, capture *domain.CurrentUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens))
	r.GET("/probe", func(c *gin.Context) {
		*capture = contextutil.GetCurrentUser(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenService("unit-test-secret", time.Hour)

	t.Run("no token - continues as anonymous", func(t *testing.T) {
		var got domain.CurrentUser
		r := setupAuthRouter(tokens, &got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, got.IsAuthenticated)
		assert.Equal(t, domain.RoleEmployee, got.Role)
		assert.Equal(t, uuid.Nil, got.UserID)
	})

	t.Run("valid token - identity populated", func(t *testing.T) {
		userID := uuid.New()
		result, err := tokens.Generate(userID, "jane@example.com", domain.RoleDirector)
		assert.NoError(t, err)

		var got domain.CurrentUser
		r := setupAuthRouter(tokens, &got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+result.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, got.IsAuthenticated)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, domain.RoleDirector, got.Role)
	})

	t.Run("garbage token - rejected", func(t *testing.T) {
		var got domain.CurrentUser
		r := setupAuthRouter(tokens, &got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("expired token - rejected with expiry code", func(t *testing.T) {
		expired := security.NewTokenService("unit-test-secret", -time.Minute)
		result, err := expired.Generate(uuid.New(), "jane@example.com", domain.RoleEmployee)
		assert.NoError(t, err)

		var got domain.CurrentUser
		r := setupAuthRouter(tokens, &got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+result.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("token signed with another secret - rejected", func(t *testing.T) {
		other := security.NewTokenService("other-secret", time.Hour)
		result, err := other.Generate(uuid.New(), "jane@example.com", domain.RoleLeader)
		assert.NoError(t, err)

		var got domain.CurrentUser
		r := setupAuthRouter(tokens, &got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+result.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
