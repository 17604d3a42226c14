package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-empdir/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// healthHandler reports whether the service can still reach its database.
func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Cannot connect to database", nil)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"status": "healthy"}, nil)
	}
}
