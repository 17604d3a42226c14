package employee

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByDocNumber(ctx context.Context, docNumber string) (*Employee, error)
	FindPaged(ctx context.Context, page, pageSize int) ([]Employee, int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Phones").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindByEmail returns (nil, nil) when no record matches; absence is not
// an error for uniqueness pre-checks and login.
func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByDocNumber(ctx context.Context, docNumber string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "doc_number = ?", docNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindPaged(ctx context.Context, page, pageSize int) ([]Employee, int64, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("created_at ASC").
		Find(&empls).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return empls, total, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&total).Error
	return total, err
}

// Update replaces the employee row and its whole phone collection. The
// caller already reconciled the phones, so delete-and-reinsert keeps the
// surviving ids stable. Zero rows affected means the record vanished
// between fetch and write.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", empl.ID).Delete(&EmployeePhone{}).Error; err != nil {
			return err
		}

		res := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(empl)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete is idempotent; deleting an absent employee is a no-op. Phones
// go with the row via the FK cascade.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
