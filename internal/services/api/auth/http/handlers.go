// Package http provides http transport for auth
package http

import (
	"io"
	stdhttp "net/http"

	"daydash/internal/modkit/httpkit"
	perr "daydash/internal/platform/errors"
	"daydash/internal/platform/net/middleware"
	"daydash/internal/services/api/auth/domain"
	svc "daydash/internal/services/api/auth/service"
)

// maxPictureBytes caps profile picture uploads
const maxPictureBytes = 5 << 20

// Register mounts auth endpoints on the given router.
// Public routes are mounted directly; account routes go behind the auth port
func Register(r httpkit.Router, s svc.Service, port middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.RegisterInput](r, "/register", h.register)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
	httpkit.PostJSON[domain.VerifyRequestInput](r, "/verify", h.requestVerify)
	httpkit.Post(r, "/verify/{token}", h.confirmVerify)
	httpkit.PostJSON[domain.ResetPasswordInput](r, "/reset-password/{token}", h.resetPassword)

	httpkit.Protected(r, port, func(pr httpkit.Router) {
		httpkit.Get(pr, "/profile", h.profile)
		httpkit.PutJSON[domain.UpdateProfileInput](pr, "/update-profile", h.updateProfile)
		httpkit.PutJSON[domain.ChangePasswordInput](pr, "/change-password", h.changePassword)
		pr.Post("/profile-picture", httpkit.Handle(h.profilePicture))
	})
}

type handlers struct{ svc svc.Service }

// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Account"
// @Success 200 {object} domain.Profile "ok"
// @Router /auth/register [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	p, err := h.svc.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

// @Summary Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.TokenResponse "ok"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in)
}

// @Summary Request a verification mail
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.VerifyRequestInput true "Email"
// @Success 200 "ok"
// @Router /auth/verify [post]
func (h *handlers) requestVerify(r *stdhttp.Request, in domain.VerifyRequestInput) (any, error) {
	if err := h.svc.RequestVerify(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Confirm a verification token
// @Tags Auth
// @Produce json
// @Param token path string true "Verification token"
// @Success 204 "verified"
// @Router /auth/verify/{token} [post]
func (h *handlers) confirmVerify(r *stdhttp.Request) (any, error) {
	if err := h.svc.ConfirmVerify(r.Context(), httpkit.Param(r, "token")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Set a new password through a reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param payload body domain.ResetPasswordInput true "New password"
// @Success 204 "reset"
// @Router /auth/reset-password/{token} [post]
func (h *handlers) resetPassword(r *stdhttp.Request, in domain.ResetPasswordInput) (any, error) {
	if err := h.svc.ResetPassword(r.Context(), httpkit.Param(r, "token"), in); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Current account profile
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.Profile "ok"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Profile(r.Context(), uid)
}

// @Summary Edit name and username
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.UpdateProfileInput true "Profile"
// @Success 200 {object} domain.Profile "ok"
// @Security BearerAuth
// @Router /auth/update-profile [put]
func (h *handlers) updateProfile(r *stdhttp.Request, in domain.UpdateProfileInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateProfile(r.Context(), uid, in)
}

// @Summary Rotate the password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.ChangePasswordInput true "Passwords"
// @Success 204 "rotated"
// @Security BearerAuth
// @Router /auth/change-password [put]
func (h *handlers) changePassword(r *stdhttp.Request, in domain.ChangePasswordInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.ChangePassword(r.Context(), uid, in); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Upload a profile picture
// @Tags Auth
// @Accept mpfd
// @Produce json
// @Param picture formData file true "Image file"
// @Success 200 {object} domain.Profile "ok"
// @Security BearerAuth
// @Router /auth/profile-picture [post]
func (h *handlers) profilePicture(r *stdhttp.Request) httpkit.Response {
	uid, err := httpkit.User(r)
	if err != nil {
		return httpkit.Error(err)
	}
	if err := r.ParseMultipartForm(maxPictureBytes); err != nil {
		return httpkit.Error(perr.WithField(perr.InvalidArgf("multipart form expected"), "picture"))
	}
	file, header, err := r.FormFile("picture")
	if err != nil {
		return httpkit.Error(perr.WithField(perr.InvalidArgf("picture file is required"), "picture"))
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxPictureBytes))
	if err != nil {
		return httpkit.Error(perr.Wrap(err, perr.ErrorCodeUnknown, "read upload"))
	}
	p, err := h.svc.SetProfilePicture(r.Context(), uid, header.Filename, data)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(p)
}
