// Package domain holds DTOs for todos http and service contracts
package domain

// Status values a todo can be in
const (
	StatusNotStarted = "not-started"
	StatusOngoing    = "ongoing"
	StatusDone       = "done"
)

// TodoInput is the payload for creating or updating a todo
type TodoInput struct {
	Name        string `json:"name" validate:"required,min=1,max=200" example:"Hand in lab report"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    string `json:"category,omitempty" validate:"omitempty,uuid4"`
	Status      string `json:"status" validate:"required,oneof=not-started ongoing done" example:"ongoing"`
	DueDate     string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-09-01T17:00:00Z"`
}

// Todo is the todo view
type Todo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
