package delivery

import (
	"fmt"

	"consolidation/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery. The state machine is
// strictly forward-only:
//
//	assigned ──> in_progress ──> completed
//	    │             │
//	    └─────────────┴──> cancelled
type Status string

const (
	// StatusAssigned is the initial status when a driver is assigned.
	StatusAssigned Status = "assigned"
	// StatusInProgress indicates the driver has started the delivery.
	StatusInProgress Status = "in_progress"
	// StatusCompleted is the successful terminal status.
	StatusCompleted Status = "completed"
	// StatusCancelled is the unsuccessful terminal status.
	StatusCancelled Status = "cancelled"
)

// Validate checks that the status is one of the known enum values.
func (s Status) Validate() error {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid delivery status", string(s)))
	}
}

// String returns the storage representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the delivery still requires driver action.
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusInProgress
}
