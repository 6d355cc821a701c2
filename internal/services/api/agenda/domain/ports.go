package domain

import "context"

// ServicePort defines the service contract for agenda items
type ServicePort interface {
	List(ctx context.Context, userID string) ([]Agenda, error)
	Create(ctx context.Context, userID string, in AgendaInput) (Agenda, error)
	Get(ctx context.Context, userID, id string) (Agenda, error)
	Update(ctx context.Context, userID, id string, in AgendaInput) (Agenda, error)
	Delete(ctx context.Context, userID, id string) error
	Calendar(ctx context.Context, userID, view, date string) (CalendarView, error)
}
