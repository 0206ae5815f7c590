package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EventEmployeeCreated     = "employee_created"
	EventEmployeeDeactivated = "employee_deactivated"
)

const AggregateEmployee = "employee"

// EmployeeLifecycleEvent is published when an employee joins or leaves.
// DepartmentID and RoleID are empty when not assigned.
type EmployeeLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	DepartmentID string    `json:"department_id,omitempty"`
	RoleID       string    `json:"role_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
