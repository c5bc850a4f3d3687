package http

import (
	"errors"
	"net/http"

	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/model/payout"
	"settlement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes.
//
// The interesting cases: an invalid workflow transition and a lost
// concurrency race both come back as 409 so the client re-reads current
// state, while a wrong handoff code and an uncovered payout amount are 422,
// a well-formed request the current state rejects.
func writeError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrActorNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCourierAlreadyAssigned),
		errors.Is(err, escrow.ErrAlreadyResolved),
		errors.Is(err, payout.ErrRequestAlreadyResolved),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, order.ErrInvalidCode),
		errors.Is(err, account.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the log, not the response.
		message = "internal error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
