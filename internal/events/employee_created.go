package events

import "time"

const EmployeeLifecycleTopic = "hrms.employee.lifecycle"

const (
	EventEmployeeCreated   = "employee_created"
	EventEmployeesImported = "employees_imported"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EmployeesImportedEvent struct {
	EventType   string    `json:"event_type"`
	EmployeeIDs []string  `json:"employee_ids"`
	ImportedBy  string    `json:"imported_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
