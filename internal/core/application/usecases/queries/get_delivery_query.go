package queries

import (
	"context"
	"database/sql"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via a NewGetDeliveryQueryBy* constructor",
)

// GetDeliveryQuery retrieves a single delivery, either by its identifier or
// as the latest delivery of a consolidation.
type GetDeliveryQuery struct {
	id              *kernel.UUID
	consolidationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQueryByID creates a lookup by delivery identifier.
func NewGetDeliveryQueryByID(id kernel.UUID) (GetDeliveryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetDeliveryQueryByConsolidationID creates a lookup for the latest
// delivery of a consolidation.
func NewGetDeliveryQueryByConsolidationID(consolidationID kernel.UUID) (GetDeliveryQuery, error) {
	if err := consolidationID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{consolidationID: &consolidationID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// GetDeliveryQueryHandler retrieves a single delivery from the database.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an ObjectNotFoundError when no
// delivery matches.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	sqlText := `
		SELECT
			id,
			consolidation_id,
			driver_id,
			status,
			start_time,
			end_time,
			actual_delivery,
			start_location,
			end_location,
			current_location,
			location_history,
			notes,
			created_at,
			updated_at
		FROM deliveries`

	var (
		arg any
		key string
	)
	if query.id != nil {
		sqlText += " WHERE id = ?"
		arg, key = query.id.Bytes(), "deliveryId"
	} else {
		sqlText += " WHERE consolidation_id = ? ORDER BY created_at DESC LIMIT 1"
		arg, key = query.consolidationID.Bytes(), "consolidationId"
	}

	row := h.db.WithContext(ctx).Raw(sqlText, arg).Row()
	resp, err := scanDeliveryRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DeliveryResponse{}, errs.NewObjectNotFoundErrorWithCause(key, arg, err)
		}
		return DeliveryResponse{}, err
	}

	return resp, nil
}
