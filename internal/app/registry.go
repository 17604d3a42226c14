package app

import (
	"database/sql"
	"os"

	"go-empdir/internal/auth"
	"go-empdir/internal/employee"
	"go-empdir/internal/messaging/kafka"
	"go-empdir/internal/middleware"
	"go-empdir/internal/security"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Security ---
	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenService(os.Getenv("JWT_SECRET"), jwtLifetime())

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, hasher, outboxRepo, rdb)
	authService := auth.NewService(employeeRepo, hasher, tokens)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	authHandler := auth.NewHandler(authService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	router.GET("/healthz", healthHandler(db))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, tokens, logger)
	}

	return nil
}
