package consolidation

import (
	"fmt"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

// ErrConsolidationIsNotConstructed is returned when a Consolidation instance
// was not created through NewConsolidation or RestoreConsolidation.
var ErrConsolidationIsNotConstructed = errs.NewValueIsRequiredError(
	"Consolidation must be created via NewConsolidation or RestoreConsolidation")

// HistoryEntry is one element of the append-only status history. History is
// never rewritten or pruned; every status change appends exactly one entry.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
	Note      string
	Location  *kernel.GeoPoint
}

// Consolidation is the aggregate root for a shipment batch: a set of parcels
// grouped for joint transport under one master tracking number.
//
// Invariants:
//   - reference code and master tracking number are globally unique
//     (enforced by unique indexes at the storage layer)
//   - status changes follow the transition table in Status
//   - status history is append-only and ordered by timestamp
//   - parcel membership is a set: adding twice keeps one entry, removing an
//     absent parcel is a no-op
type Consolidation struct {
	id                   kernel.UUID
	referenceCode        string
	masterTrackingNumber string
	status               Status
	history              []HistoryEntry
	parcels              []string
	createdBy            kernel.UUID
	assignedDriver       *kernel.UUID
	warehouseID          *kernel.UUID
	createdAt            time.Time
	updatedAt            time.Time
	guard                guard.ConstructorGuard
}

// NewConsolidation creates a consolidation with the given business keys and an
// initial history entry. An empty initialStatus defaults to StatusPending.
func NewConsolidation(
	id kernel.UUID,
	referenceCode string,
	masterTrackingNumber string,
	createdBy kernel.UUID,
	warehouseID *kernel.UUID,
	initialStatus Status,
	now time.Time,
) (*Consolidation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if referenceCode == "" {
		return nil, errs.NewValueIsRequiredError("referenceCode")
	}
	if masterTrackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("masterTrackingNumber")
	}
	if err := createdBy.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	if initialStatus == "" {
		initialStatus = StatusPending
	}
	if err := initialStatus.Validate(); err != nil {
		return nil, err
	}

	c := &Consolidation{
		id:                   id,
		referenceCode:        referenceCode,
		masterTrackingNumber: masterTrackingNumber,
		status:               initialStatus,
		createdBy:            createdBy,
		warehouseID:          warehouseID,
		createdAt:            now,
		updatedAt:            now,
		guard:                guard.NewConstructorGuard(),
	}
	c.history = append(c.history, HistoryEntry{
		Status:    initialStatus,
		Timestamp: now,
		Note:      "Consolidation created",
	})

	return c, nil
}

// RestoreConsolidation reconstructs a consolidation from persistence without
// appending a creation history entry.
func RestoreConsolidation(
	id kernel.UUID,
	referenceCode string,
	masterTrackingNumber string,
	status Status,
	history []HistoryEntry,
	parcels []string,
	createdBy kernel.UUID,
	assignedDriver *kernel.UUID,
	warehouseID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Consolidation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Consolidation{
		id:                   id,
		referenceCode:        referenceCode,
		masterTrackingNumber: masterTrackingNumber,
		status:               status,
		history:              history,
		parcels:              parcels,
		createdBy:            createdBy,
		assignedDriver:       assignedDriver,
		warehouseID:          warehouseID,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// ID returns the aggregate identifier.
func (c *Consolidation) ID() kernel.UUID {
	return c.id
}

// ReferenceCode returns the caller-supplied unique business key.
func (c *Consolidation) ReferenceCode() string {
	return c.referenceCode
}

// MasterTrackingNumber returns the unique day-scoped tracking identifier.
func (c *Consolidation) MasterTrackingNumber() string {
	return c.masterTrackingNumber
}

// Status returns the current lifecycle status.
func (c *Consolidation) Status() Status {
	return c.status
}

// History returns the append-only status history in chronological order.
func (c *Consolidation) History() []HistoryEntry {
	return c.history
}

// Parcels returns the parcel reference set in insertion order.
func (c *Consolidation) Parcels() []string {
	return c.parcels
}

// CreatedBy returns the creator reference.
func (c *Consolidation) CreatedBy() kernel.UUID {
	return c.createdBy
}

// AssignedDriver returns the assigned driver reference, or nil.
func (c *Consolidation) AssignedDriver() *kernel.UUID {
	return c.assignedDriver
}

// WarehouseID returns the warehouse reference, or nil.
func (c *Consolidation) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// CreatedAt returns the creation timestamp.
func (c *Consolidation) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (c *Consolidation) UpdatedAt() time.Time {
	return c.updatedAt
}

// ChangeStatus applies a status transition, appending one history entry with
// the new status. Illegal transitions (including self-transitions and any
// change out of a terminal status) fail with an InvalidStateError.
func (c *Consolidation) ChangeStatus(next Status, note string, location *kernel.GeoPoint, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if !c.status.CanTransitionTo(next) {
		return errs.NewInvalidStateErrorWithCause("consolidation",
			fmt.Errorf("cannot change status from %s to %s", c.status, next))
	}

	c.status = next
	c.appendHistory(next, note, location, now)
	c.updatedAt = now
	return nil
}

// AssignDriver assigns (or reassigns) a driver and moves the consolidation to
// assigned_to_driver, appending a history entry. Assignment is only allowed
// before transport has started.
func (c *Consolidation) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}

	switch c.status {
	case StatusPending, StatusProcessing, StatusAssignedToDriver:
		// assignable, including reassignment
	default:
		return errs.NewInvalidStateErrorWithCause("consolidation",
			fmt.Errorf("cannot assign a driver while status is %s", c.status))
	}

	c.assignedDriver = &driverID
	c.status = StatusAssignedToDriver
	c.appendHistory(StatusAssignedToDriver, "Driver assigned", nil, now)
	c.updatedAt = now
	return nil
}

// AddParcel adds a parcel reference to the membership set. The operation is
// idempotent; it reports whether the parcel was actually added.
func (c *Consolidation) AddParcel(parcelID string, now time.Time) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if parcelID == "" {
		return false, errs.NewValueIsRequiredError("parcelId")
	}

	for _, existing := range c.parcels {
		if existing == parcelID {
			return false, nil
		}
	}

	c.parcels = append(c.parcels, parcelID)
	c.updatedAt = now
	return true, nil
}

// RemoveParcel removes a parcel reference from the membership set. Removing a
// parcel that is not a member is a no-op.
func (c *Consolidation) RemoveParcel(parcelID string, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	kept := c.parcels[:0]
	removed := false
	for _, existing := range c.parcels {
		if existing == parcelID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	c.parcels = kept
	if removed {
		c.updatedAt = now
	}
	return nil
}

// SetWarehouse updates the warehouse reference.
func (c *Consolidation) SetWarehouse(warehouseID *kernel.UUID, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.warehouseID = warehouseID
	c.updatedAt = now
	return nil
}

// Validate checks that the aggregate was created through a constructor.
func (c *Consolidation) Validate() error {
	return c.guard.Validate(ErrConsolidationIsNotConstructed)
}

func (c *Consolidation) appendHistory(status Status, note string, location *kernel.GeoPoint, now time.Time) {
	c.history = append(c.history, HistoryEntry{
		Status:    status,
		Timestamp: now,
		Note:      note,
		Location:  location,
	})
}
