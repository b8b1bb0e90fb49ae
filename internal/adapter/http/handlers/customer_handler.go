package handlers

import (
	"errors"
	"net/http"
	"time"

	response "bengal_portal/internal/adapter/http/dto/response"
	"bengal_portal/internal/usecase"
	"bengal_portal/pkg"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	now     func() time.Time
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// Directory lists the customers derived from the job records.
func (h *CustomerHandler) Directory(c *gin.Context) {
	customers, err := h.usecase.Directory(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// Overview is the signed-in customer's dashboard.
func (h *CustomerHandler) Overview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	now := h.now()

	overview, err := h.usecase.Overview(c.Request.Context(), user, now)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOverview(overview, now))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only customers have an overview", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
