package handlers

import (
	"errors"
	"net/http"

	request "bengal_portal/internal/adapter/http/dto/request"
	response "bengal_portal/internal/adapter/http/dto/response"
	"bengal_portal/internal/usecase"
	"bengal_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

func (h *AssistantHandler) History(c *gin.Context) {
	turns, err := h.usecase.History(c.Request.Context())
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChatTurns(turns))
}

// Ask always answers 200 once the question is stored; a degraded reply is
// flagged in the body rather than as an error status.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var payload request.AssistantMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	exchange, err := h.usecase.Ask(c.Request.Context(), payload.Content)
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssistantExchange(exchange))
}

func (h *AssistantHandler) Clear(c *gin.Context) {
	if err := h.usecase.ClearHistory(c.Request.Context()); err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
