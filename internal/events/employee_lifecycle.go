package events

import "time"

const EmployeeLifecycleTopic = "directory.employee.lifecycle.v1"

const (
	TypeEmployeeCreated = "employee_created"
	TypeEmployeeDeleted = "employee_deleted"
)

// EmployeeLifecycleEvent is published for downstream systems (provisioning,
// payroll exports) whenever a directory record is created or removed.
type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role,omitempty"`
	ManagerID  string    `json:"manager_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
