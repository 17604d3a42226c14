package auth

import (
	"go-empdir/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		authGroup.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)
	}
}
