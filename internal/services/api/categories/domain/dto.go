// Package domain holds DTOs for categories http and service contracts
package domain

// CategoryInput is the payload for creating or updating a category
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"University"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon        string `json:"icon,omitempty" validate:"omitempty,max=100" example:"book"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor" example:"#7c3aed"`
}

// Category is the category view
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
