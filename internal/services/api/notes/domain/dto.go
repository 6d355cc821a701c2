// Package domain holds DTOs for notes http and service contracts
package domain

// NoteInput is the payload for creating or updating a note.
// Content is rich text HTML and is stored opaque
type NoteInput struct {
	Title    string `json:"title" validate:"required,min=1,max=200" example:"Lecture 4"`
	Category string `json:"category,omitempty" validate:"omitempty,uuid4"`
	Content  string `json:"content,omitempty" validate:"omitempty,max=100000"`
}

// Note is the note view
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
