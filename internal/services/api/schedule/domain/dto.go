// Package domain holds DTOs for schedule http and service contracts
package domain

// ScheduleInput is the payload for creating or updating a weekly schedule.
// Day is an English weekday name; StartTime and EndTime are "HH:MM" strings
// checked for shape only
type ScheduleInput struct {
	Name      string `json:"name" validate:"required,min=1,max=200" example:"Linear Algebra"`
	Day       string `json:"day" validate:"required,weekday" example:"Monday"`
	StartTime string `json:"start_time" validate:"required,clock" example:"10:15"`
	EndTime   string `json:"end_time" validate:"required,clock" example:"12:00"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=200"`
	Category  string `json:"category,omitempty" validate:"omitempty,uuid4"`
}

// Schedule is the weekly schedule view
type Schedule struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location,omitempty"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EventView is one expanded occurrence of a schedule inside a window
type EventView struct {
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// EventsView is the expansion response: the resolved window plus every
// occurrence of the user's schedules inside it, schedule-major
type EventsView struct {
	View   string      `json:"view"`
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Events []EventView `json:"events"`
}
