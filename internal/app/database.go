package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-empdir/internal/domain"
	"go-empdir/internal/employee"
	"go-empdir/internal/messaging/kafka"
	"go-empdir/internal/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Bootstrap credentials for the seeded Director. Meant to be rotated
// through a regular update right after first login.
const (
	seedDirectorEmail    = "admin@email.com"
	seedDirectorPassword = "Admin@123"
)

func initDatabase(gormDB *gorm.DB, db *sql.DB, logger *zap.Logger) error {
	if err := gormDB.AutoMigrate(&employee.Employee{}, &employee.EmployeePhone{}); err != nil {
		return fmt.Errorf("migrate employee tables: %w", err)
	}

	if err := kafka.EnsureOutboxSchema(context.Background(), db); err != nil {
		return fmt.Errorf("migrate outbox table: %w", err)
	}

	repo := employee.NewRepository(gormDB)
	hasher := security.NewPasswordHasher()
	return seedDirector(context.Background(), repo, hasher, logger)
}

// seedDirector inserts an initial Director when the store is empty.
// Creating an account requires a caller whose role outranks the new one,
// so an empty directory would otherwise be impossible to bootstrap.
func seedDirector(
	ctx context.Context,
	repo employee.Repository,
	hasher security.PasswordHasher,
	logger *zap.Logger,
) error {
	total, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count employees: %w", err)
	}
	if total > 0 {
		return nil
	}

	hashed, err := hasher.Hash(seedDirectorPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	empl := &employee.Employee{
		ID:        uuid.New(),
		FirstName: "Admin",
		LastName:  "User",
		Email:     seedDirectorEmail,
		DocNumber: "00100100101",
		Password:  hashed,
		BirthDate: time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC),
		Role:      domain.RoleDirector,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	empl.Phones = []employee.EmployeePhone{
		{ID: uuid.New(), EmployeeID: empl.ID, PhoneNumber: "+1234567890"},
	}

	if err := repo.Create(ctx, empl); err != nil {
		return fmt.Errorf("seed director: %w", err)
	}

	logger.Info("seeded initial director",
		zap.String("employee_id", empl.ID.String()),
		zap.String("email", empl.Email),
	)
	return nil
}
