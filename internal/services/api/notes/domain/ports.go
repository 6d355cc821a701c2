package domain

import "context"

// ServicePort defines the service contract for notes
type ServicePort interface {
	List(ctx context.Context, userID string) ([]Note, error)
	Create(ctx context.Context, userID string, in NoteInput) (Note, error)
	Get(ctx context.Context, userID, id string) (Note, error)
	Update(ctx context.Context, userID, id string, in NoteInput) (Note, error)
	Delete(ctx context.Context, userID, id string) error
}
