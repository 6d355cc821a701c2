// Package http provides http transport for todos
package http

import (
	stdhttp "net/http"

	"daydash/internal/modkit/httpkit"
	"daydash/internal/services/api/todos/domain"
	svc "daydash/internal/services/api/todos/service"
)

// Register mounts todo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.TodoInput](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.TodoInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List todos
// @Tags Todos
// @Produce json
// @Success 200 {array} domain.Todo "ok"
// @Security BearerAuth
// @Router /todo [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}

// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param payload body domain.TodoInput true "Todo"
// @Success 201 {object} domain.Todo "created"
// @Security BearerAuth
// @Router /todo [post]
func (h *handlers) create(r *stdhttp.Request, in domain.TodoInput) (any, error) {
	t, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(t), nil
}

// @Summary Get a todo
// @Tags Todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} domain.Todo "ok"
// @Security BearerAuth
// @Router /todo/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
}

// @Summary Update a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id"
// @Param payload body domain.TodoInput true "Todo"
// @Success 200 {object} domain.Todo "ok"
// @Security BearerAuth
// @Router /todo/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.TodoInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete a todo
// @Tags Todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 204 "deleted"
// @Security BearerAuth
// @Router /todo/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), uid, httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
