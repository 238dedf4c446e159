package queries

import (
	"context"
	"errors"
	"strings"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrGetConsolidationsQueryIsNotConstructed = errors.New(
	"GetConsolidationsQuery must be created via NewGetConsolidationsQuery constructor",
)

// GetConsolidationsQuery lists consolidations with optional filters on
// status, warehouse, creator and assigned driver.
type GetConsolidationsQuery struct {
	status         consolidation.Status
	warehouseID    *kernel.UUID
	createdBy      *kernel.UUID
	assignedDriver *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConsolidationsQuery creates a list query. An empty status means no
// status filter; nil identifier filters are skipped.
func NewGetConsolidationsQuery(
	status consolidation.Status,
	warehouseID, createdBy, assignedDriver *kernel.UUID,
) (GetConsolidationsQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetConsolidationsQuery{}, err
		}
	}

	return GetConsolidationsQuery{
		status:         status,
		warehouseID:    warehouseID,
		createdBy:      createdBy,
		assignedDriver: assignedDriver,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsolidationsQuery) Validate() error {
	return q.guard.Validate(ErrGetConsolidationsQueryIsNotConstructed)
}

// GetConsolidationsQueryHandler lists consolidations from the database.
// List reads skip the delivery projection; it is only attached to single
// consolidation reads.
type GetConsolidationsQueryHandler struct {
	db *gorm.DB
}

// NewGetConsolidationsQueryHandler creates a handler for consolidation list
// queries.
func NewGetConsolidationsQueryHandler(db *gorm.DB) GetConsolidationsQueryHandler {
	return GetConsolidationsQueryHandler{db: db}
}

// Handle executes the list query, newest first.
func (h GetConsolidationsQueryHandler) Handle(
	ctx context.Context,
	query GetConsolidationsQuery,
) ([]ConsolidationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if query.status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, query.status.String())
	}
	if query.warehouseID != nil {
		conditions = append(conditions, "warehouse_id = ?")
		args = append(args, query.warehouseID.Bytes())
	}
	if query.createdBy != nil {
		conditions = append(conditions, "created_by = ?")
		args = append(args, query.createdBy.Bytes())
	}
	if query.assignedDriver != nil {
		conditions = append(conditions, "assigned_driver = ?")
		args = append(args, query.assignedDriver.Bytes())
	}

	sql := `
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
	`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consolidations := make([]ConsolidationResponse, 0)
	for rows.Next() {
		resp, scanErr := scanConsolidationRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		consolidations = append(consolidations, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return consolidations, nil
}

// rowScanner covers *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsolidationRow(row rowScanner) (ConsolidationResponse, error) {
	var (
		resp           ConsolidationResponse
		id             uuid.UUID
		createdBy      uuid.UUID
		assignedDriver uuid.NullUUID
		warehouseID    uuid.NullUUID
		history        []byte
		parcels        pq.StringArray
	)

	err := row.Scan(
		&id,
		&resp.ReferenceCode,
		&resp.MasterTrackingNumber,
		&resp.Status,
		&history,
		&parcels,
		&createdBy,
		&assignedDriver,
		&warehouseID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ConsolidationResponse{}, err
	}

	if resp.ID, err = uuidFrom(id); err != nil {
		return ConsolidationResponse{}, err
	}
	if resp.CreatedBy, err = uuidFrom(createdBy); err != nil {
		return ConsolidationResponse{}, err
	}
	if resp.AssignedDriver, err = optionalUUID(assignedDriver); err != nil {
		return ConsolidationResponse{}, err
	}
	if resp.WarehouseID, err = optionalUUID(warehouseID); err != nil {
		return ConsolidationResponse{}, err
	}
	if err = unmarshalJSON(history, &resp.History); err != nil {
		return ConsolidationResponse{}, err
	}
	resp.Parcels = []string(parcels)
	if resp.Parcels == nil {
		resp.Parcels = []string{}
	}
	if resp.History == nil {
		resp.History = []HistoryEntryResponse{}
	}

	return resp, nil
}
