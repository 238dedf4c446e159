package delivery

import (
	"errors"
	"fmt"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"Delivery must be created via NewDelivery or RestoreDelivery")

// ErrAlreadyInProgress signals a second start of the same delivery.
var ErrAlreadyInProgress = errors.New("delivery already in progress")

// ErrNotInProgress signals ending or locating a delivery that has not started.
var ErrNotInProgress = errors.New("delivery is not in progress")

// LocationPing is one element of the append-only location history.
type LocationPing struct {
	Point     kernel.GeoPoint
	Timestamp time.Time
}

// Delivery is the aggregate root for one driver's execution of a
// consolidation's transport.
//
// Invariants:
//   - start time and start location are set exactly once, on the transition
//     to in_progress; a delivery cannot be started twice
//   - end time is set only on the transition to completed, which is reachable
//     from in_progress alone
//   - the location history is append-only and timestamp-ordered
type Delivery struct {
	id              kernel.UUID
	consolidationID kernel.UUID
	driverID        kernel.UUID
	status          Status
	startTime       *time.Time
	endTime         *time.Time
	actualDelivery  *time.Time
	startLocation   *kernel.GeoPoint
	endLocation     *kernel.GeoPoint
	currentLocation *LocationPing
	locationHistory []LocationPing
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// NewDelivery creates a delivery in the assigned status.
func NewDelivery(id, consolidationID, driverID kernel.UUID, now time.Time) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := consolidationID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("consolidationId", err)
	}
	if err := driverID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}

	return &Delivery{
		id:              id,
		consolidationID: consolidationID,
		driverID:        driverID,
		status:          StatusAssigned,
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id, consolidationID, driverID kernel.UUID,
	status Status,
	startTime, endTime, actualDelivery *time.Time,
	startLocation, endLocation *kernel.GeoPoint,
	currentLocation *LocationPing,
	locationHistory []LocationPing,
	notes string,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:              id,
		consolidationID: consolidationID,
		driverID:        driverID,
		status:          status,
		startTime:       startTime,
		endTime:         endTime,
		actualDelivery:  actualDelivery,
		startLocation:   startLocation,
		endLocation:     endLocation,
		currentLocation: currentLocation,
		locationHistory: locationHistory,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ID returns the aggregate identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ConsolidationID returns the transported consolidation's identifier.
func (d *Delivery) ConsolidationID() kernel.UUID {
	return d.consolidationID
}

// DriverID returns the executing driver's identifier.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// StartTime returns the in_progress transition timestamp, or nil.
func (d *Delivery) StartTime() *time.Time {
	return d.startTime
}

// EndTime returns the completed transition timestamp, or nil.
func (d *Delivery) EndTime() *time.Time {
	return d.endTime
}

// ActualDeliveryTime returns the recorded hand-over timestamp, or nil.
func (d *Delivery) ActualDeliveryTime() *time.Time {
	return d.actualDelivery
}

// StartLocation returns where the delivery was started, or nil.
func (d *Delivery) StartLocation() *kernel.GeoPoint {
	return d.startLocation
}

// EndLocation returns where the delivery was completed, or nil.
func (d *Delivery) EndLocation() *kernel.GeoPoint {
	return d.endLocation
}

// CurrentLocation returns the most recent location ping, or nil.
func (d *Delivery) CurrentLocation() *LocationPing {
	return d.currentLocation
}

// LocationHistory returns the append-only location trail.
func (d *Delivery) LocationHistory() []LocationPing {
	return d.locationHistory
}

// Notes returns the driver's free-form notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Start moves the delivery from assigned to in_progress, recording the start
// location and time. Starting twice fails with an InvalidStateError.
func (d *Delivery) Start(location kernel.GeoPoint, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if d.status == StatusInProgress {
		return errs.NewInvalidStateErrorWithCause("delivery", ErrAlreadyInProgress)
	}
	if d.status != StatusAssigned {
		return errs.NewInvalidStateErrorWithCause("delivery",
			fmt.Errorf("cannot start a %s delivery", d.status))
	}

	d.status = StatusInProgress
	d.startTime = &now
	d.startLocation = &location
	d.recordPing(location, now)
	d.updatedAt = now
	return nil
}

// End moves the delivery from in_progress to completed, recording the end
// location, time and optional notes. Ending from any other status fails with
// an InvalidStateError.
func (d *Delivery) End(location kernel.GeoPoint, notes string, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if d.status != StatusInProgress {
		return errs.NewInvalidStateErrorWithCause("delivery", ErrNotInProgress)
	}

	d.status = StatusCompleted
	d.endTime = &now
	d.actualDelivery = &now
	d.endLocation = &location
	d.recordPing(location, now)
	if notes != "" {
		d.notes = notes
	}
	d.updatedAt = now
	return nil
}

// UpdateLocation appends a location ping for an in-progress delivery.
func (d *Delivery) UpdateLocation(location kernel.GeoPoint, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if d.status != StatusInProgress {
		return errs.NewInvalidStateErrorWithCause("delivery", ErrNotInProgress)
	}

	d.recordPing(location, now)
	d.updatedAt = now
	return nil
}

// Validate checks that the aggregate was created through a constructor.
func (d *Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) recordPing(location kernel.GeoPoint, now time.Time) {
	ping := LocationPing{Point: location, Timestamp: now}
	d.currentLocation = &ping
	d.locationHistory = append(d.locationHistory, ping)
}
