package queries

import (
	"context"
	"database/sql"
	"time"

	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQuery lists deliveries with optional filters. The zero value
// lists everything.
type GetDeliveriesQuery struct {
	status     delivery.Status
	driverID   *kernel.UUID
	activeOnly bool
}

// NewGetDeliveriesQuery creates a list query. Every filter is optional.
func NewGetDeliveriesQuery(
	status delivery.Status,
	driverID *kernel.UUID,
	activeOnly bool,
) (GetDeliveriesQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}
	return GetDeliveriesQuery{status: status, driverID: driverID, activeOnly: activeOnly}, nil
}

// GetDeliveriesQueryHandler lists deliveries straight from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery listings.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the listing. Returns an empty slice when nothing matches.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]DeliveryResponse, error) {
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
		conditions []string
		args       []any
	)
	if query.status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, query.status.String())
	}
	if query.driverID != nil {
		conditions = append(conditions, "driver_id = ?")
		args = append(args, query.driverID.Bytes())
	}
	if query.activeOnly {
		conditions = append(conditions, "status IN (?, ?)")
		args = append(args, delivery.StatusAssigned.String(), delivery.StatusInProgress.String())
	}
	sqlText += whereClause(conditions) + " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanDeliveryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// scanDeliveryRow maps one deliveries row onto the read model.
func scanDeliveryRow(row rowScanner) (DeliveryResponse, error) {
	var (
		id              uuid.UUID
		consolidationID uuid.UUID
		driverID        uuid.UUID
		status          string
		startTime       sql.NullTime
		endTime         sql.NullTime
		actualDelivery  sql.NullTime
		startLocation   []byte
		endLocation     []byte
		currentLocation []byte
		locationHistory []byte
		notes           sql.NullString
		createdAt       time.Time
		updatedAt       time.Time
	)
	err := row.Scan(
		&id,
		&consolidationID,
		&driverID,
		&status,
		&startTime,
		&endTime,
		&actualDelivery,
		&startLocation,
		&endLocation,
		&currentLocation,
		&locationHistory,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveryID, err := uuidFrom(id)
	if err != nil {
		return DeliveryResponse{}, err
	}
	consolidation, err := uuidFrom(consolidationID)
	if err != nil {
		return DeliveryResponse{}, err
	}
	driver, err := uuidFrom(driverID)
	if err != nil {
		return DeliveryResponse{}, err
	}

	resp := DeliveryResponse{
		ID:              deliveryID,
		ConsolidationID: consolidation,
		DriverID:        driver,
		Status:          status,
		StartTime:       optionalTime(startTime),
		EndTime:         optionalTime(endTime),
		ActualDelivery:  optionalTime(actualDelivery),
		Notes:           notes.String,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if len(startLocation) > 0 {
		var point GeoPointResponse
		if err = unmarshalJSON(startLocation, &point); err != nil {
			return DeliveryResponse{}, err
		}
		resp.StartLocation = &point
	}
	if len(endLocation) > 0 {
		var point GeoPointResponse
		if err = unmarshalJSON(endLocation, &point); err != nil {
			return DeliveryResponse{}, err
		}
		resp.EndLocation = &point
	}
	if len(currentLocation) > 0 {
		var ping LocationPingResponse
		if err = unmarshalJSON(currentLocation, &ping); err != nil {
			return DeliveryResponse{}, err
		}
		resp.CurrentLocation = &ping
	}
	if err = unmarshalJSON(locationHistory, &resp.LocationHistory); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.LocationHistory == nil {
		resp.LocationHistory = make([]LocationPingResponse, 0)
	}

	return resp, nil
}
