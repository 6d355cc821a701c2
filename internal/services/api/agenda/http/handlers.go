// Package http provides http transport for agenda items
package http

import (
	stdhttp "net/http"

	"daydash/internal/modkit/httpkit"
	"daydash/internal/services/api/agenda/domain"
	svc "daydash/internal/services/api/agenda/service"
)

// Register mounts agenda endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.AgendaInput](r, "/", h.create)
	httpkit.Get(r, "/calendar", h.calendar)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.AgendaInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List agenda items
// @Tags Agenda
// @Produce json
// @Success 200 {array} domain.Agenda "ok"
// @Security BearerAuth
// @Router /agenda [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}

// @Summary Create an agenda item
// @Tags Agenda
// @Accept json
// @Produce json
// @Param payload body domain.AgendaInput true "Agenda item"
// @Success 201 {object} domain.Agenda "created"
// @Security BearerAuth
// @Router /agenda [post]
func (h *handlers) create(r *stdhttp.Request, in domain.AgendaInput) (any, error) {
	a, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(a), nil
}

// @Summary Calendar view of agenda items
// @Description Resolves a day, week, month or year window around the anchor
// @Description date and returns the items inside it bucketed by day
// @Tags Agenda
// @Produce json
// @Param view query string true "day, week, month or year"
// @Param date query string false "Anchor date, YYYY-MM-DD or RFC 3339; defaults to today"
// @Success 200 {object} domain.CalendarView "ok"
// @Failure 422 {object} net.Error "unknown view"
// @Security BearerAuth
// @Router /agenda/calendar [get]
func (h *handlers) calendar(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return h.svc.Calendar(r.Context(), uid, q.Get("view"), q.Get("date"))
}

// @Summary Get an agenda item
// @Tags Agenda
// @Produce json
// @Param id path string true "Agenda id"
// @Success 200 {object} domain.Agenda "ok"
// @Security BearerAuth
// @Router /agenda/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
}

// @Summary Update an agenda item
// @Tags Agenda
// @Accept json
// @Produce json
// @Param id path string true "Agenda id"
// @Param payload body domain.AgendaInput true "Agenda item"
// @Success 200 {object} domain.Agenda "ok"
// @Security BearerAuth
// @Router /agenda/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.AgendaInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete an agenda item
// @Tags Agenda
// @Produce json
// @Param id path string true "Agenda id"
// @Success 204 "deleted"
// @Security BearerAuth
// @Router /agenda/{id} [delete]
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
