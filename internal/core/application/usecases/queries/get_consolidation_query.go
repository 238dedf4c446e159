package queries

import (
	"context"
	"database/sql"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetConsolidationQueryIsNotConstructed = errors.New(
	"GetConsolidationQuery must be created via a NewGetConsolidationQueryBy* constructor",
)

// GetConsolidationQuery retrieves a single consolidation by one of its three
// lookup keys: identifier, reference code or master tracking number.
type GetConsolidationQuery struct {
	id             *kernel.UUID
	referenceCode  string
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetConsolidationQueryByID creates a lookup by identifier.
func NewGetConsolidationQueryByID(id kernel.UUID) (GetConsolidationQuery, error) {
	if err := id.Validate(); err != nil {
		return GetConsolidationQuery{}, err
	}
	return GetConsolidationQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetConsolidationQueryByReferenceCode creates a lookup by reference code.
func NewGetConsolidationQueryByReferenceCode(referenceCode string) (GetConsolidationQuery, error) {
	if referenceCode == "" {
		return GetConsolidationQuery{}, errs.NewValueIsRequiredError("referenceCode")
	}
	return GetConsolidationQuery{referenceCode: referenceCode, guard: guard.NewConstructorGuard()}, nil
}

// NewGetConsolidationQueryByTrackingNumber creates a lookup by master
// tracking number.
func NewGetConsolidationQueryByTrackingNumber(trackingNumber string) (GetConsolidationQuery, error) {
	if trackingNumber == "" {
		return GetConsolidationQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	return GetConsolidationQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetConsolidationQuery) Validate() error {
	return q.guard.Validate(ErrGetConsolidationQueryIsNotConstructed)
}

// GetConsolidationQueryHandler retrieves a single consolidation and attaches
// the delivery projection computed from the latest delivery. The projection
// is never stored on the consolidation row.
type GetConsolidationQueryHandler struct {
	db *gorm.DB
}

// NewGetConsolidationQueryHandler creates a handler for single consolidation
// lookups.
func NewGetConsolidationQueryHandler(db *gorm.DB) GetConsolidationQueryHandler {
	return GetConsolidationQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an ObjectNotFoundError when no
// consolidation matches the key.
func (h GetConsolidationQueryHandler) Handle(
	ctx context.Context,
	query GetConsolidationQuery,
) (ConsolidationResponse, error) {
	if err := query.Validate(); err != nil {
		return ConsolidationResponse{}, err
	}

	var (
		condition string
		arg       any
		key       string
	)
	switch {
	case query.id != nil:
		condition, arg, key = "id = ?", query.id.Bytes(), "consolidationId"
	case query.referenceCode != "":
		condition, arg, key = "reference_code = ?", query.referenceCode, "referenceCode"
	default:
		condition, arg, key = "master_tracking_number = ?", query.trackingNumber, "trackingNumber"
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference_code,
			master_tracking_number,
			status,
			history,
			parcels,
			created_by,
			assigned_driver,
			warehouse_id,
			created_at,
			updated_at
		FROM consolidations
		WHERE `+condition, arg).Row()

	resp, err := scanConsolidationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ConsolidationResponse{}, errs.NewObjectNotFoundErrorWithCause(key, arg, err)
		}
		return ConsolidationResponse{}, err
	}

	progress, err := h.deliveryProgress(ctx, resp.ID)
	if err != nil {
		return ConsolidationResponse{}, err
	}
	resp.DeliveryStatus = progress

	return resp, nil
}

// deliveryProgress reads the latest delivery for the consolidation, if any.
func (h GetConsolidationQueryHandler) deliveryProgress(
	ctx context.Context,
	consolidationID kernel.UUID,
) (*DeliveryProgressResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			start_time,
			end_time,
			current_location
		FROM deliveries
		WHERE consolidation_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, consolidationID.Bytes()).Row()

	var (
		id              uuid.UUID
		status          string
		startTime       sql.NullTime
		endTime         sql.NullTime
		currentLocation []byte
	)
	err := row.Scan(&id, &status, &startTime, &endTime, &currentLocation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	deliveryID, err := uuidFrom(id)
	if err != nil {
		return nil, err
	}
	progress := &DeliveryProgressResponse{
		DeliveryID: deliveryID,
		Status:     status,
		StartTime:  optionalTime(startTime),
		EndTime:    optionalTime(endTime),
	}
	if len(currentLocation) > 0 {
		var ping LocationPingResponse
		if err = unmarshalJSON(currentLocation, &ping); err != nil {
			return nil, err
		}
		progress.CurrentLocation = &ping
	}

	return progress, nil
}
