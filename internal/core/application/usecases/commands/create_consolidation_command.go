package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

var ErrCreateConsolidationCommandIsNotConstructed = errors.New(
	"CreateConsolidationCommand must be created via NewCreateConsolidationCommand constructor",
)

// CreateConsolidationCommand represents a request to create a new
// consolidation with an optional initial parcel list.
type CreateConsolidationCommand struct { //nolint:recvcheck //using for validation
	consolidationID      kernel.UUID
	referenceCode        string
	masterTrackingNumber string
	createdBy            kernel.UUID
	warehouseID          *kernel.UUID
	initialStatus        consolidation.Status
	parcels              []string

	guard guard.ConstructorGuard
}

// NewCreateConsolidationCommand creates a command to register a new
// consolidation. The reference code and creator are mandatory; an empty
// initial status defaults to pending and an empty master tracking number is
// generated from the day-scoped sequence.
func NewCreateConsolidationCommand(
	consolidationID kernel.UUID,
	referenceCode string,
	masterTrackingNumber string,
	createdBy kernel.UUID,
	warehouseID *kernel.UUID,
	initialStatus consolidation.Status,
	parcels []string,
) (CreateConsolidationCommand, error) {
	if err := consolidationID.Validate(); err != nil {
		return CreateConsolidationCommand{}, err
	}
	if referenceCode == "" {
		return CreateConsolidationCommand{}, errs.NewValueIsRequiredError("referenceCode")
	}
	if err := createdBy.Validate(); err != nil {
		return CreateConsolidationCommand{}, errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	if initialStatus != "" {
		if err := initialStatus.Validate(); err != nil {
			return CreateConsolidationCommand{}, err
		}
	}

	return CreateConsolidationCommand{
		consolidationID:      consolidationID,
		referenceCode:        referenceCode,
		masterTrackingNumber: masterTrackingNumber,
		createdBy:            createdBy,
		warehouseID:          warehouseID,
		initialStatus:        initialStatus,
		parcels:              parcels,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrCreateConsolidationCommandIsNotConstructed)
}

// ConsolidationID returns the identifier for the new consolidation.
func (c CreateConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// ReferenceCode returns the caller-supplied unique reference code.
func (c CreateConsolidationCommand) ReferenceCode() string {
	return c.referenceCode
}

// MasterTrackingNumber returns the caller-supplied tracking number, empty
// when one should be generated.
func (c CreateConsolidationCommand) MasterTrackingNumber() string {
	return c.masterTrackingNumber
}

// CreatedBy returns the creating user.
func (c CreateConsolidationCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

// WarehouseID returns the optional originating warehouse.
func (c CreateConsolidationCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// InitialStatus returns the requested initial status, empty for the default.
func (c CreateConsolidationCommand) InitialStatus() consolidation.Status {
	return c.initialStatus
}

// Parcels returns the initial parcel identifiers.
func (c CreateConsolidationCommand) Parcels() []string {
	return c.parcels
}

// CreateConsolidationCommandHandler handles consolidation creation. It draws
// the master tracking number from the day-scoped sequence unless the caller
// supplied one, persists the aggregate and queues the creation notification,
// all in one transaction.
type CreateConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	fanout     services.NotificationFanout
}

// NewCreateConsolidationCommandHandler creates a handler for consolidation
// creation operations.
func NewCreateConsolidationCommandHandler(uowFactory ConsolidationUoWFactory) CreateConsolidationCommandHandler {
	return CreateConsolidationCommandHandler{
		uowFactory: uowFactory,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the consolidation creation command.
// Fails with an ObjectAlreadyExistsError when the reference code or a
// caller-supplied tracking number is taken.
func (h *CreateConsolidationCommandHandler) Handle(ctx context.Context, cmd CreateConsolidationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ConsolidationRepository()
	taken, err := repo.ExistsByReferenceCode(ctx, cmd.ReferenceCode())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewObjectAlreadyExistsError("referenceCode", cmd.ReferenceCode())
	}

	now := time.Now()
	trackingNumber := cmd.MasterTrackingNumber()
	if trackingNumber == "" {
		sequence, seqErr := uow.SequenceRepository().Next(ctx, kernel.PrefixTracking, now)
		if seqErr != nil {
			return seqErr
		}
		trackingNumber = kernel.FormatBusinessNumber(kernel.PrefixTracking, now, sequence)
	} else {
		taken, existsErr := repo.ExistsByTrackingNumber(ctx, trackingNumber)
		if existsErr != nil {
			return existsErr
		}
		if taken {
			return errs.NewObjectAlreadyExistsError("masterTrackingNumber", trackingNumber)
		}
	}

	aggregate, err := consolidation.NewConsolidation(
		cmd.ConsolidationID(),
		cmd.ReferenceCode(),
		trackingNumber,
		cmd.CreatedBy(),
		cmd.WarehouseID(),
		cmd.InitialStatus(),
		now,
	)
	if err != nil {
		return err
	}
	for _, parcelID := range cmd.Parcels() {
		if _, err = aggregate.AddParcel(parcelID, now); err != nil {
			return err
		}
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	notifications, err := h.fanout.ConsolidationCreated(aggregate)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, notifications); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
