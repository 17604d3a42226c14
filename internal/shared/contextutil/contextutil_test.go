package contextutil_test

import (
	"context"
	"testing"

	"go-empdir/internal/domain"
	"go-empdir/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, contextutil.GetRequestID(ctx))

	ctx = contextutil.WithRequestID(ctx, "REQ-1")
	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()

	// Unset identity falls back to anonymous.
	anon := contextutil.GetCurrentUser(ctx)
	assert.False(t, anon.IsAuthenticated)
	assert.Equal(t, domain.RoleEmployee, anon.Role)

	user := domain.CurrentUser{UserID: uuid.New(), Role: domain.RoleDirector, IsAuthenticated: true}
	ctx = contextutil.WithCurrentUser(ctx, user)
	assert.Equal(t, user, contextutil.GetCurrentUser(ctx))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewNop()

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop().With(zap.String("request_id", "REQ-1"))
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
