package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "bengal_portal/internal/adapter/http/dto/request"
	response "bengal_portal/internal/adapter/http/dto/response"
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
	"bengal_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errJobNotYours       = pkg.NewDomainErrorSimple("FORBIDDEN", "This job belongs to another customer", http.StatusForbidden)
)

// JobHandler exposes the job board. Listing and editing are staff actions;
// customers may read and annotate their own jobs.

type JobHandler struct {
	usecase     usecase.IJobUseCase
	horizonDays int
	now         func() time.Time
}

// NewJobHandler builds the handler. horizonDays is the window used when
// expiring_within is given without a value.
func NewJobHandler(uc usecase.IJobUseCase, horizonDays int) *JobHandler {
	return &JobHandler{usecase: uc, horizonDays: horizonDays, now: func() time.Time { return time.Now().UTC() }}
}

// ListJobs supports one filter at a time, checked in this order:
// expiring_within (days), start_date (YYYY-MM-DD), status.
func (h *JobHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.now()

	var (
		jobs []entities.Job
		err  error
	)
	expiring, hasExpiring := c.GetQuery("expiring_within")
	switch {
	case hasExpiring:
		days := h.horizonDays
		var convErr error
		if strings.TrimSpace(expiring) != "" {
			days, convErr = strconv.Atoi(strings.TrimSpace(expiring))
		}
		if convErr != nil || days < 0 {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "expiring_within must be a non-negative number of days", http.StatusBadRequest).ToHTTPError())
			return
		}
		jobs, err = h.usecase.FilterExpiringWithin(ctx, days, now)
	case c.Query("start_date") != "":
		jobs, err = h.usecase.ListByStartDate(ctx, c.Query("start_date"))
	case c.Query("status") != "":
		jobs, err = h.usecase.FilterByStatus(ctx, c.Query("status"))
	default:
		jobs, err = h.usecase.List(ctx)
	}
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs, now))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, ok := h.visibleJob(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job, h.now()))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

func (h *JobHandler) SetStatus(c *gin.Context) {
	var payload request.JobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

// GetWarranty returns the live warranty classification of a job.
func (h *JobHandler) GetWarranty(c *gin.Context) {
	job, ok := h.visibleJob(c)
	if !ok {
		return
	}
	status := response.FromWarranty(job.WarrantyEndDate, h.now())
	if status == nil {
		c.JSON(http.StatusNotFound, pkg.NewDomainErrorSimple("WARRANTY_NOT_SET", "Job has no readable warranty end date", http.StatusNotFound).ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *JobHandler) SetWarranty(c *gin.Context) {
	var payload request.WarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SetWarrantyEndDate(c.Request.Context(), c.Param("id"), payload.WarrantyEndDate)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

// DeleteJob requires ?confirm=true.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if _, ok := h.visibleJob(c); !ok {
		return
	}

	job, err := h.usecase.AppendNote(c.Request.Context(), c.Param("id"), usecase.NoteInput{Text: payload.Text, Images: payload.Images}, user)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job, h.now()))
}

func (h *JobHandler) CreateInvite(c *gin.Context) {
	ref, err := h.usecase.GenerateInviteReference(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.InviteResponse{JobID: strings.TrimSpace(c.Param("id")), URL: ref})
}

// visibleJob loads the job in the path and checks that a customer only
// reaches their own. It writes the error response itself.
func (h *JobHandler) visibleJob(c *gin.Context) (entities.Job, bool) {
	user, ok := currentUser(c)
	if !ok {
		return entities.Job{}, false
	}
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Job{}, false
	}
	if !user.IsAdmin() && job.CustomerID != user.ID {
		c.JSON(errJobNotYours.HTTPStatus, errJobNotYours.ToHTTPError())
		return entities.Job{}, false
	}
	return job, true
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Deleting a job requires confirm=true", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
