// Package domain holds DTOs for agenda http and service contracts
package domain

// AgendaInput is the payload for creating or updating an agenda item.
// StartTime and EndTime are wall-clock "HH:MM" strings; they are shape
// checked only, values pass through to the calendar as written
type AgendaInput struct {
	Name      string `json:"name" validate:"required,min=1,max=200" example:"Dentist"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2026-09-01T00:00:00Z"`
	StartTime string `json:"start_time" validate:"required,clock" example:"14:30"`
	EndTime   string `json:"end_time" validate:"required,clock" example:"15:00"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=200"`
	Category  string `json:"category,omitempty" validate:"omitempty,uuid4"`
}

// Agenda is the agenda item view
type Agenda struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location,omitempty"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EventView is a concrete dated occurrence inside a calendar window
type EventView struct {
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// CalendarView is the agenda calendar response: the resolved window, items
// bucketed by "YYYY-MM-DD" day (only non-empty days appear), and the same
// items flattened into render-ready events
type CalendarView struct {
	View   string              `json:"view"`
	Start  string              `json:"start"`
	End    string              `json:"end"`
	Days   map[string][]Agenda `json:"days"`
	Events []EventView         `json:"events"`
}
