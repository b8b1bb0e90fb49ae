package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	request "bengal_portal/internal/adapter/http/dto/request"
	response "bengal_portal/internal/adapter/http/dto/response"
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
	"bengal_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)

// SessionHandler resolves and manages the signed-in user of this device.

type SessionHandler struct {
	usecase usecase.IIdentityUseCase
}

func NewSessionHandler(uc usecase.IIdentityUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Resolve identifies the active user. An accepted ?code= invite is
// answered with a redirect to the same URL without the code so the token
// does not stay in the address bar.
func (h *SessionHandler) Resolve(c *gin.Context) {
	in := usecase.ResolveInput{
		InviteToken: c.Query("code"),
		Role:        entities.UserRole(strings.ToUpper(strings.TrimSpace(c.Query("role")))),
	}

	res, err := h.usecase.Resolve(c.Request.Context(), in)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if res.TokenConsumed {
		c.Redirect(http.StatusSeeOther, withoutInviteCode(c.Request.URL))
		return
	}
	c.JSON(http.StatusOK, response.FromResolution(res))
}

func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	role := entities.UserRole(strings.ToUpper(strings.TrimSpace(payload.Role)))
	user, err := h.usecase.Login(c.Request.Context(), role)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.UpdateProfile(c.Request.Context(), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func withoutInviteCode(u *url.URL) string {
	clean := *u
	q := clean.Query()
	q.Del("code")
	clean.RawQuery = q.Encode()
	return clean.RequestURI()
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errNotSignedIn
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only customers can edit their profile", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
