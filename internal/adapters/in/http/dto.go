package http

import (
	"time"

	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/model/payout"
)

// OpenOrderRequest is the body of POST /api/v1/orders.
// Amounts are in minor currency units.
type OpenOrderRequest struct {
	BuyerID     string `json:"buyer_id"`
	SellerID    string `json:"seller_id"`
	ItemAmount  int64  `json:"item_amount"`
	DeliveryFee int64  `json:"delivery_fee"`
}

// ActorRequest is the body of endpoints authorized by a single acting user.
type ActorRequest struct {
	ActorID string `json:"actor_id"`
}

// AssignCourierRequest is the body of POST /api/v1/orders/:id/assign.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// HandoffRequest is the body of pickup and dropoff confirmations.
type HandoffRequest struct {
	CourierID string `json:"courier_id"`
	Code      string `json:"code"`
}

// ResolveDisputeRequest is the body of POST /api/v1/admin/orders/:id/resolve.
type ResolveDisputeRequest struct {
	ArbiterID  string `json:"arbiter_id"`
	Resolution string `json:"resolution"`
}

// LocationReportRequest is the body of POST /api/v1/locations, one device sample.
type LocationReportRequest struct {
	CourierID  string    `json:"courier_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ObservedAt time.Time `json:"observed_at"`
}

// RequestPayoutRequest is the body of POST /api/v1/payouts.
type RequestPayoutRequest struct {
	AccountID   string `json:"account_id"`
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}

// ResolvePayoutRequest is the body of payout approval and rejection.
type ResolvePayoutRequest struct {
	ArbiterID string `json:"arbiter_id"`
	Reason    string `json:"reason,omitempty"`
}

// PositionResponse is a courier position in responses.
type PositionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderResponse is the order representation returned by order endpoints.
type OrderResponse struct {
	ID                string            `json:"id"`
	BuyerID           string            `json:"buyer_id"`
	SellerID          string            `json:"seller_id"`
	CourierID         *string           `json:"courier_id,omitempty"`
	Status            string            `json:"status"`
	ItemAmount        int64             `json:"item_amount"`
	DeliveryFee       int64             `json:"delivery_fee"`
	PlatformFee       int64             `json:"platform_fee"`
	Total             int64             `json:"total"`
	LastKnownPosition *PositionResponse `json:"last_known_position,omitempty"`
}

// OpenedOrderResponse extends OrderResponse with the handoff codes, returned
// only from order creation so the caller can distribute them.
type OpenedOrderResponse struct {
	OrderResponse
	PickupCode  string `json:"pickup_code"`
	DropoffCode string `json:"dropoff_code"`
}

// PayoutResponse is the payout request representation.
type PayoutResponse struct {
	ID            string     `json:"id"`
	AccountID     string     `json:"account_id"`
	Amount        int64      `json:"amount"`
	Destination   string     `json:"destination"`
	Status        string     `json:"status"`
	FailureReason string     `json:"failure_reason,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

func orderToResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID().String(),
		BuyerID:     o.BuyerID().String(),
		SellerID:    o.SellerID().String(),
		Status:      o.Status().String(),
		ItemAmount:  o.Pricing().ItemAmount().Amount(),
		DeliveryFee: o.Pricing().DeliveryFee().Amount(),
		PlatformFee: o.Pricing().PlatformFee().Amount(),
		Total:       o.Pricing().Total().Amount(),
	}

	if courierID := o.Courier(); courierID != nil {
		id := courierID.String()
		resp.CourierID = &id
	}

	if pos := o.LastKnownPosition(); pos != nil {
		resp.LastKnownPosition = &PositionResponse{
			Latitude:  pos.Latitude(),
			Longitude: pos.Longitude(),
		}
	}

	return resp
}

func orderQueryToResponse(o queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID.String(),
		BuyerID:     o.BuyerID.String(),
		SellerID:    o.SellerID.String(),
		Status:      o.Status.String(),
		ItemAmount:  o.ItemAmount.Amount(),
		DeliveryFee: o.DeliveryFee.Amount(),
		PlatformFee: o.PlatformFee.Amount(),
		Total:       o.Total.Amount(),
	}

	if o.CourierID != nil {
		id := o.CourierID.String()
		resp.CourierID = &id
	}

	if o.LastKnownPosition != nil {
		resp.LastKnownPosition = &PositionResponse{
			Latitude:  o.LastKnownPosition.Latitude(),
			Longitude: o.LastKnownPosition.Longitude(),
		}
	}

	return resp
}

func payoutToResponse(req *payout.Request) PayoutResponse {
	return PayoutResponse{
		ID:            req.ID().String(),
		AccountID:     req.AccountID().String(),
		Amount:        req.Amount().Amount(),
		Destination:   req.Destination(),
		Status:        req.Status().String(),
		FailureReason: req.FailureReason(),
		RequestedAt:   req.RequestedAt(),
		ResolvedAt:    req.ResolvedAt(),
	}
}
