package events

import "time"

const EmployeeLifecycleTopic = "workforce.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID uint      `json:"employee_id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
