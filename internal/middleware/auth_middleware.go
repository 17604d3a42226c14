package middleware

import (
	"strings"

	autherrors "go-empdir/internal/auth/errors"
	"go-empdir/internal/domain"
	"go-empdir/internal/security"
	"go-empdir/internal/shared/contextutil"
	"go-empdir/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware resolves the caller's identity. Requests without a token
// proceed as anonymous; a token that is present but invalid is rejected.
func AuthMiddleware(tokens security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			setCurrentUser(c, domain.Anonymous())
			c.Next()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			response.Error(c, autherrors.ErrInvalidToken.HTTPStatus, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		setCurrentUser(c, domain.CurrentUser{
			UserID:          userID,
			Role:            domain.ParseRole(claims.Role),
			IsAuthenticated: true,
		})
		c.Next()
	}
}

func setCurrentUser(c *gin.Context, user domain.CurrentUser) {
	if user.IsAuthenticated {
		c.Set("user_id", user.UserID.String())
	}
	c.Set("role", user.Role.String())

	ctx := contextutil.WithCurrentUser(c.Request.Context(), user)
	c.Request = c.Request.WithContext(ctx)
}
