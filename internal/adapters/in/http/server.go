// Package http exposes the settlement workflow over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/tracking"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the settlement workflow.
type Server struct {
	// Command handlers
	openOrderHandler      commands.OpenOrderCommandHandler
	markReadyHandler      commands.MarkReadyForPickupCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	confirmPickupHandler  commands.ConfirmPickupCommandHandler
	confirmDropoffHandler commands.ConfirmDropoffCommandHandler
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler
	openDisputeHandler    commands.OpenDisputeCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	resolveDisputeHandler commands.ResolveDisputeCommandHandler
	requestPayoutHandler  commands.RequestPayoutCommandHandler
	approvePayoutHandler  commands.ApprovePayoutCommandHandler
	rejectPayoutHandler   commands.RejectPayoutCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getPendingPayoutsHandler queries.GetPendingPayoutsQueryHandler

	// Location ingestion
	trackingManager *tracking.Manager
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openOrderHandler commands.OpenOrderCommandHandler,
	markReadyHandler commands.MarkReadyForPickupCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	confirmDropoffHandler commands.ConfirmDropoffCommandHandler,
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler,
	openDisputeHandler commands.OpenDisputeCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	resolveDisputeHandler commands.ResolveDisputeCommandHandler,
	requestPayoutHandler commands.RequestPayoutCommandHandler,
	approvePayoutHandler commands.ApprovePayoutCommandHandler,
	rejectPayoutHandler commands.RejectPayoutCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingPayoutsHandler queries.GetPendingPayoutsQueryHandler,
	trackingManager *tracking.Manager,
) *Server {
	return &Server{
		openOrderHandler:         openOrderHandler,
		markReadyHandler:         markReadyHandler,
		assignCourierHandler:     assignCourierHandler,
		confirmPickupHandler:     confirmPickupHandler,
		confirmDropoffHandler:    confirmDropoffHandler,
		confirmReceiptHandler:    confirmReceiptHandler,
		openDisputeHandler:       openDisputeHandler,
		cancelOrderHandler:       cancelOrderHandler,
		resolveDisputeHandler:    resolveDisputeHandler,
		requestPayoutHandler:     requestPayoutHandler,
		approvePayoutHandler:     approvePayoutHandler,
		rejectPayoutHandler:      rejectPayoutHandler,
		getOrderHandler:          getOrderHandler,
		getPendingPayoutsHandler: getPendingPayoutsHandler,
		trackingManager:          trackingManager,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.OpenOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/ready", s.MarkReadyForPickup)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/pickup", s.ConfirmPickup)
	api.POST("/orders/:id/dropoff", s.ConfirmDropoff)
	api.POST("/orders/:id/receipt", s.ConfirmReceipt)
	api.POST("/orders/:id/dispute", s.OpenDispute)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/locations", s.ReportLocation)

	api.POST("/payouts", s.RequestPayout)

	api.POST("/admin/orders/:id/resolve", s.ResolveDispute)
	api.GET("/admin/payouts", s.GetPendingPayouts)
	api.POST("/admin/payouts/:id/approve", s.ApprovePayout)
	api.POST("/admin/payouts/:id/reject", s.RejectPayout)
}

// OpenOrder handles POST /api/v1/orders - opens a new order with escrow.
// The response carries the generated handoff codes; they are not returned by
// any later read.
func (s *Server) OpenOrder(ctx echo.Context) error {
	var req OpenOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, "Invalid buyer_id")
	}

	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return badRequest(ctx, "Invalid seller_id")
	}

	itemAmount, err := kernel.NewMoney(req.ItemAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryFee, err := kernel.NewMoney(req.DeliveryFee)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewOpenOrderCommand(kernel.NewUUID(), buyerID, sellerID, itemAmount, deliveryFee)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.openOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OpenedOrderResponse{
		OrderResponse: orderToResponse(o),
		PickupCode:    o.PickupCode(),
		DropoffCode:   o.DropoffCode(),
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderQueryToResponse(o))
}

// MarkReadyForPickup handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkReadyForPickup(ctx echo.Context) error {
	orderID, actorID, err := s.bindActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkReadyForPickupCommand(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.markReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// AssignCourier handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ConfirmPickup handles POST /api/v1/orders/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	orderID, courierID, code, err := s.bindHandoff(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID, courierID, code)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ConfirmDropoff handles POST /api/v1/orders/:id/dropoff.
func (s *Server) ConfirmDropoff(ctx echo.Context) error {
	orderID, courierID, code, err := s.bindHandoff(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmDropoffCommand(orderID, courierID, code)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.confirmDropoffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ConfirmReceipt handles POST /api/v1/orders/:id/receipt.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	orderID, actorID, err := s.bindActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmReceiptCommand(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.confirmReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// OpenDispute handles POST /api/v1/orders/:id/dispute.
func (s *Server) OpenDispute(ctx echo.Context) error {
	orderID, actorID, err := s.bindActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewOpenDisputeCommand(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.openDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, actorID, err := s.bindActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ResolveDispute handles POST /api/v1/admin/orders/:id/resolve.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ResolveDisputeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	arbiterID, err := kernel.UUIDFromString(req.ArbiterID)
	if err != nil {
		return badRequest(ctx, "Invalid arbiter_id")
	}

	cmd, err := commands.NewResolveDisputeCommand(orderID, arbiterID, commands.Resolution(req.Resolution))
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ReportLocation handles POST /api/v1/locations - one courier device sample.
// Always 202 on a well-formed sample: throttled and out-of-session samples
// are dropped without telling the device apart from accepted ones.
func (s *Server) ReportLocation(ctx echo.Context) error {
	var req LocationReportRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id")
	}

	position, err := kernel.NewGeoPosition(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	observedAt := req.ObservedAt
	if observedAt.IsZero() {
		observedAt = timeNow()
	}

	if err = s.trackingManager.Report(ctx.Request().Context(), courierID, position, observedAt); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// RequestPayout handles POST /api/v1/payouts.
func (s *Server) RequestPayout(ctx echo.Context) error {
	var req RequestPayoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	accountID, err := kernel.UUIDFromString(req.AccountID)
	if err != nil {
		return badRequest(ctx, "Invalid account_id")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRequestPayoutCommand(kernel.NewUUID(), accountID, amount, req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	payoutReq, err := s.requestPayoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, payoutToResponse(payoutReq))
}

// GetPendingPayouts handles GET /api/v1/admin/payouts.
func (s *Server) GetPendingPayouts(ctx echo.Context) error {
	query := queries.NewGetPendingPayoutsQuery()

	payouts, err := s.getPendingPayoutsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PayoutResponse, len(payouts))
	for i, p := range payouts {
		response[i] = PayoutResponse{
			ID:          p.ID.String(),
			AccountID:   p.AccountID.String(),
			Amount:      p.Amount.Amount(),
			Destination: p.Destination,
			Status:      "pending",
			RequestedAt: p.RequestedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApprovePayout handles POST /api/v1/admin/payouts/:id/approve.
func (s *Server) ApprovePayout(ctx echo.Context) error {
	payoutID, arbiterID, _, err := s.bindPayoutResolution(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApprovePayoutCommand(payoutID, arbiterID)
	if err != nil {
		return writeError(ctx, err)
	}

	req, err := s.approvePayoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, payoutToResponse(req))
}

// RejectPayout handles POST /api/v1/admin/payouts/:id/reject.
func (s *Server) RejectPayout(ctx echo.Context) error {
	payoutID, arbiterID, reason, err := s.bindPayoutResolution(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectPayoutCommand(payoutID, arbiterID, reason)
	if err != nil {
		return writeError(ctx, err)
	}

	req, err := s.rejectPayoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, payoutToResponse(req))
}
