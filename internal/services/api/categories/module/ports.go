package module

import (
	"context"

	catdom "daydash/internal/services/api/categories/domain"
	catsvc "daydash/internal/services/api/categories/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptPort adapts the categories service to the domain port interface
type adaptPort struct{ svc catsvc.Service }

// Get implements the domain ServicePort lookup other modules may use
func (a adaptPort) Get(ctx context.Context, userID, id string) (catdom.Category, error) {
	return a.svc.Get(ctx, userID, id)
}
