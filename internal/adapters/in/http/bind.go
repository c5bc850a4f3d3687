package http

import (
	"errors"
	"net/http"
	"time"

	"settlement/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// timeNow is a package variable so tests can pin the clock for samples that
// arrive without an observed_at timestamp.
var timeNow = func() time.Time { return time.Now().UTC() }

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// bindActor parses the order path parameter and the single-actor body used
// by ready, receipt, dispute, and cancel endpoints.
func (s *Server) bindActor(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id")
	}

	var req ActorRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid actor_id")
	}

	return orderID, actorID, nil
}

// bindHandoff parses the order path parameter and the courier/code body used
// by pickup and dropoff confirmations.
func (s *Server) bindHandoff(ctx echo.Context) (kernel.UUID, kernel.UUID, string, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid order id")
	}

	var req HandoffRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid courier_id")
	}

	return orderID, courierID, req.Code, nil
}

// bindPayoutResolution parses the payout path parameter and the arbiter body
// used by payout approval and rejection.
func (s *Server) bindPayoutResolution(ctx echo.Context) (kernel.UUID, kernel.UUID, string, error) {
	payoutID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid payout id")
	}

	var req ResolvePayoutRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid request body")
	}

	arbiterID, err := kernel.UUIDFromString(req.ArbiterID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", errors.New("invalid arbiter_id")
	}

	return payoutID, arbiterID, req.Reason, nil
}
