package usecase

import (
	"context"
)

// Gating reasons reported when a dispatch tick ends without attempting delivery.
const (
	GateReasonDisabled       = "notifications disabled"
	GateReasonOutsideWeekday = "outside allowed weekdays"
	GateReasonOutsideWindow  = "outside delivery window"
	GateReasonNoneDue        = "no notifications due"
)

// DispatchResult summarizes one dispatch tick. When the tick is gated, Sent
// is zero and Reason names the gate that closed it.
type DispatchResult struct {
	Sent            int    `json:"sent"`
	Failed          int    `json:"failed"`
	TotalConsidered int    `json:"total_considered"`
	Reason          string `json:"reason,omitempty"`
}

// DispatchUsecase defines the notification dispatch entry point. It is
// invoked on a recurring cadence (e.g., hourly) by an external scheduler.
type DispatchUsecase interface {
	// DispatchDueNotifications checks the delivery window gates and, when
	// open, delivers the due pending notifications, transitioning their state
	// and writing one audit log entry per attempt.
	DispatchDueNotifications(ctx context.Context) (*DispatchResult, error)
}
