package domain

import "context"

// ServicePort defines the service contract for categories
type ServicePort interface {
	List(ctx context.Context, userID string) ([]Category, error)
	Create(ctx context.Context, userID string, in CategoryInput) (Category, error)
	Get(ctx context.Context, userID, id string) (Category, error)
	Update(ctx context.Context, userID, id string, in CategoryInput) (Category, error)
	Delete(ctx context.Context, userID, id string) error
}
