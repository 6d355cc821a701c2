// Package http provides http transport for categories
package http

import (
	stdhttp "net/http"

	"daydash/internal/modkit/httpkit"
	"daydash/internal/services/api/categories/domain"
	svc "daydash/internal/services/api/categories/service"
)

// Register mounts category endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CategoryInput](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.CategoryInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} domain.Category "ok"
// @Security BearerAuth
// @Router /category [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}

// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param payload body domain.CategoryInput true "Category"
// @Success 201 {object} domain.Category "created"
// @Security BearerAuth
// @Router /category [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CategoryInput) (any, error) {
	c, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(c), nil
}

// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} domain.Category "ok"
// @Security BearerAuth
// @Router /category/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
}

// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param payload body domain.CategoryInput true "Category"
// @Success 200 {object} domain.Category "ok"
// @Security BearerAuth
// @Router /category/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.CategoryInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category id"
// @Success 204 "deleted"
// @Security BearerAuth
// @Router /category/{id} [delete]
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
