// Package http provides http transport for weekly schedules
package http

import (
	stdhttp "net/http"

	"daydash/internal/modkit/httpkit"
	"daydash/internal/services/api/schedule/domain"
	svc "daydash/internal/services/api/schedule/service"
)

// Register mounts schedule endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.ScheduleInput](r, "/", h.create)
	httpkit.Get(r, "/events", h.events)
	r.Get("/export.ics", httpkit.Handle(h.exportICS))
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.ScheduleInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List schedules
// @Tags Schedule
// @Produce json
// @Success 200 {array} domain.Schedule "ok"
// @Security BearerAuth
// @Router /schedule [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}

// @Summary Create a schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.ScheduleInput true "Schedule"
// @Success 201 {object} domain.Schedule "created"
// @Security BearerAuth
// @Router /schedule [post]
func (h *handlers) create(r *stdhttp.Request, in domain.ScheduleInput) (any, error) {
	sc, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(sc), nil
}

// @Summary Expand schedules into a calendar window
// @Description Resolves a day, week, month or year window around the anchor
// @Description date and emits one event per schedule occurrence inside it
// @Tags Schedule
// @Produce json
// @Param view query string true "day, week, month or year"
// @Param date query string false "Anchor date, YYYY-MM-DD or RFC 3339; defaults to today"
// @Success 200 {object} domain.EventsView "ok"
// @Failure 422 {object} net.Error "unknown view"
// @Security BearerAuth
// @Router /schedule/events [get]
func (h *handlers) events(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return h.svc.Events(r.Context(), uid, q.Get("view"), q.Get("date"))
}

// @Summary Export schedules as iCalendar
// @Tags Schedule
// @Produce text/calendar
// @Success 200 {string} string "ics feed"
// @Security BearerAuth
// @Router /schedule/export.ics [get]
func (h *handlers) exportICS(r *stdhttp.Request) httpkit.Response {
	uid, err := httpkit.User(r)
	if err != nil {
		return httpkit.Error(err)
	}
	body, err := h.svc.ExportICS(r.Context(), uid)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Raw(stdhttp.StatusOK, "text/calendar; charset=utf-8", body)
}

// @Summary Get a schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Schedule id"
// @Success 200 {object} domain.Schedule "ok"
// @Security BearerAuth
// @Router /schedule/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
}

// @Summary Update a schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule id"
// @Param payload body domain.ScheduleInput true "Schedule"
// @Success 200 {object} domain.Schedule "ok"
// @Security BearerAuth
// @Router /schedule/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.ScheduleInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete a schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Schedule id"
// @Success 204 "deleted"
// @Security BearerAuth
// @Router /schedule/{id} [delete]
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
