package domain

import "context"

// ServicePort defines the service contract for todos
type ServicePort interface {
	List(ctx context.Context, userID string) ([]Todo, error)
	Create(ctx context.Context, userID string, in TodoInput) (Todo, error)
	Get(ctx context.Context, userID, id string) (Todo, error)
	Update(ctx context.Context, userID, id string, in TodoInput) (Todo, error)
	Delete(ctx context.Context, userID, id string) error
}
