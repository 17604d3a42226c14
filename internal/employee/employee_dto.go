package employee

import (
	"go-empdir/internal/domain"

	"github.com/google/uuid"
)

// BirthDateLayout is the wire format for birth dates.
const BirthDateLayout = "2006/01/02"

type EmployeePhoneRequest struct {
	// A nil ID marks the entry as a new phone; a non-nil ID targets an
	// existing phone of the employee.
	ID          *uuid.UUID `json:"id"`
	PhoneNumber string     `json:"phone_number" binding:"required,max=25"`
}

type CreateEmployeeRequest struct {
	FirstName string                 `json:"first_name" binding:"required,max=60"`
	LastName  string                 `json:"last_name" binding:"required,max=60"`
	Email     string                 `json:"email" binding:"required,email,max=100"`
	DocNumber string                 `json:"doc_number" binding:"required,max=20"`
	Password  string                 `json:"password" binding:"required,min=6,max=80"`
	BirthDate string                 `json:"birth_date" binding:"required"`
	Role      domain.Role            `json:"role" binding:"required"`
	Phones    []EmployeePhoneRequest `json:"phones" binding:"omitempty,dive"`
}

// UpdateEmployeeRequest carries partial updates. A nil field means "leave
// the stored value alone"; only present fields overwrite.
type UpdateEmployeeRequest struct {
	FirstName *string                `json:"first_name" binding:"omitempty,min=1,max=60"`
	LastName  *string                `json:"last_name" binding:"omitempty,min=1,max=60"`
	Password  *string                `json:"password" binding:"omitempty,min=6,max=80"`
	BirthDate *string                `json:"birth_date"`
	Active    *bool                  `json:"active"`
	Role      *domain.Role           `json:"role"`
	// Omitting phones keeps the stored collection; sending a list (even
	// an empty one) replaces it wholesale.
	Phones []EmployeePhoneRequest `json:"phones" binding:"omitempty,dive"`
}

type EmployeePhoneResponse struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

type EmployeeResponse struct {
	ID        string                  `json:"id"`
	Active    bool                    `json:"active"`
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	Email     string                  `json:"email"`
	DocNumber string                  `json:"doc_number"`
	BirthDate string                  `json:"birth_date"`
	Role      string                  `json:"role"`
	ManagerID string                  `json:"manager_id,omitempty"`
	Phones    []EmployeePhoneResponse `json:"phones,omitempty"`
}

type PagedEmployeesResponse struct {
	Items       []EmployeeResponse `json:"items"`
	TotalCount  int64              `json:"totalCount"`
	PageSize    int                `json:"pageSize"`
	CurrentPage int                `json:"currentPage"`
}
