package employee

import (
	"time"

	"go-empdir/internal/domain"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FirstName string      `gorm:"type:varchar(60);not null"`
	LastName  string      `gorm:"type:varchar(60);not null"`
	Email     string      `gorm:"type:varchar(100);uniqueIndex:uq_employee_email;not null"`
	DocNumber string      `gorm:"type:varchar(20);uniqueIndex:uq_employee_doc_number;not null"`
	Password  string      `gorm:"type:varchar(255);not null"`
	BirthDate time.Time   `gorm:"type:date;not null"`
	Role      domain.Role `gorm:"type:smallint;not null"`
	ManagerID *uuid.UUID  `gorm:"type:uuid"`
	Active    bool        `gorm:"default:true"`
	CreatedAt time.Time

	// Phones are owned by the employee; the FK cascade removes them
	// together with their owner.
	Phones  []EmployeePhone `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Manager *Employee       `gorm:"foreignKey:ManagerID"`
}

type EmployeePhone struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;index;not null"`
	PhoneNumber string    `gorm:"type:varchar(25);not null"`
}
