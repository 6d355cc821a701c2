package domain

import "context"

// ServicePort defines the service contract for weekly schedules
type ServicePort interface {
	List(ctx context.Context, userID string) ([]Schedule, error)
	Create(ctx context.Context, userID string, in ScheduleInput) (Schedule, error)
	Get(ctx context.Context, userID, id string) (Schedule, error)
	Update(ctx context.Context, userID, id string, in ScheduleInput) (Schedule, error)
	Delete(ctx context.Context, userID, id string) error
	Events(ctx context.Context, userID, view, date string) (EventsView, error)
	ExportICS(ctx context.Context, userID string) ([]byte, error)
}
