package consolidation

import (
	"fmt"

	"consolidation/internal/pkg/errs"
)

// Status represents the lifecycle state of a consolidation. It implements a
// state machine with an explicit transition table so that only legal
// transitions are persisted.
//
// State transitions:
//
//	pending ──> processing ──> assigned_to_driver ──> in_transit ──┬──> out_for_delivery ──> delivered
//	   │             │                                             └──────────────────────> delivered
//	   └─────────────┴──> assigned_to_driver
//
// cancelled is reachable from every non-terminal state; delivered and
// cancelled are terminal.
type Status string

const (
	// StatusPending is the initial status of a newly created consolidation.
	StatusPending Status = "pending"
	// StatusProcessing indicates parcels are being prepared at the warehouse.
	StatusProcessing Status = "processing"
	// StatusAssignedToDriver indicates a driver has been assigned for transport.
	StatusAssignedToDriver Status = "assigned_to_driver"
	// StatusInTransit indicates the delivery has started.
	StatusInTransit Status = "in_transit"
	// StatusOutForDelivery indicates the shipment is on its final leg.
	StatusOutForDelivery Status = "out_for_delivery"
	// StatusDelivered is the successful terminal status.
	StatusDelivered Status = "delivered"
	// StatusCancelled is the unsuccessful terminal status.
	StatusCancelled Status = "cancelled"
)

// transitions is the closed set of legal status changes.
var transitions = map[Status][]Status{
	StatusPending:          {StatusProcessing, StatusAssignedToDriver, StatusCancelled},
	StatusProcessing:       {StatusAssignedToDriver, StatusCancelled},
	StatusAssignedToDriver: {StatusInTransit, StatusCancelled},
	StatusInTransit:        {StatusOutForDelivery, StatusDelivered, StatusCancelled},
	StatusOutForDelivery:   {StatusDelivered, StatusCancelled},
	StatusDelivered:        {},
	StatusCancelled:        {},
}

// Validate checks that the status is one of the known enum values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid consolidation status", string(s)))
	}
	return nil
}

// String returns the storage representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether changing to next is a legal transition.
// Self-transitions are not part of the table and are rejected.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
