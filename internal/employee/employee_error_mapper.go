package employee

import (
	"errors"
	"strings"

	employeeerrors "go-empdir/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store-level failures into the classified
// taxonomy. Unique-constraint races between concurrent creates surface
// here as conflicts; anything unrecognized propagates unchanged.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_email":
				return employeeerrors.ErrEmailAlreadyExists
			case "uq_employee_doc_number":
				return employeeerrors.ErrDocNumberAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_doc_number") {
		return employeeerrors.ErrDocNumberAlreadyExists
	}

	return err
}
