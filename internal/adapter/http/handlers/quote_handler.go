package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "bengal_portal/internal/adapter/http/dto/request"
	response "bengal_portal/internal/adapter/http/dto/response"
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
	"bengal_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler runs the request -> price -> pay flow for catalog items.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes returns every quote to staff (view=pending or view=paid narrow
// it) and only their own quotes to customers.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		quotes []entities.QuoteRequest
		err    error
	)
	switch view := strings.ToLower(strings.TrimSpace(c.Query("view"))); {
	case !user.IsAdmin():
		quotes, err = h.usecase.ListByCustomer(ctx, user.ID)
	case view == "pending":
		quotes, err = h.usecase.Pending(ctx)
	case view == "paid":
		quotes, err = h.usecase.Paid(ctx)
	case view == "" || view == "all":
		quotes, err = h.usecase.List(ctx)
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "view must be pending, paid or all", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !user.IsAdmin() && quote.CustomerID != user.ID {
		appErr := mapQuoteError(usecase.ErrForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	in := usecase.QuoteInput{Notes: payload.CustomerNotes, ApplianceImage: payload.ApplianceImage}
	quote, err := h.usecase.RequestQuote(c.Request.Context(), payload.ToProduct(), user, in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) PriceQuote(c *gin.Context) {
	var payload request.QuotePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.PriceQuote(c.Request.Context(), c.Param("id"), payload.Price, payload.AdminNotes)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// PayQuote marks the quote paid and returns where to send the customer to
// settle it.
func (h *QuoteHandler) PayQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.usecase.AcceptAndPay(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(result.Quote, result.CheckoutURL))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "This quote belongs to another customer", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
