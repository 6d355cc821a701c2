// Package http provides http transport for notes
package http

import (
	stdhttp "net/http"

	"daydash/internal/modkit/httpkit"
	"daydash/internal/services/api/notes/domain"
	svc "daydash/internal/services/api/notes/service"
)

// Register mounts note endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.NoteInput](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.NoteInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List notes
// @Tags Notes
// @Produce json
// @Success 200 {array} domain.Note "ok"
// @Security BearerAuth
// @Router /notes [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}

// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body domain.NoteInput true "Note"
// @Success 201 {object} domain.Note "created"
// @Security BearerAuth
// @Router /notes [post]
func (h *handlers) create(r *stdhttp.Request, in domain.NoteInput) (any, error) {
	n, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(n), nil
}

// @Summary Get a note
// @Tags Notes
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} domain.Note "ok"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
}

// @Summary Update a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param payload body domain.NoteInput true "Note"
// @Success 200 {object} domain.Note "ok"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.NoteInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete a note
// @Tags Notes
// @Produce json
// @Param id path string true "Note id"
// @Success 204 "deleted"
// @Security BearerAuth
// @Router /notes/{id} [delete]
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
