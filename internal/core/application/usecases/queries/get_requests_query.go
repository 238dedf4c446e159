package queries

import (
	"context"
	"database/sql"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestsQuery lists consolidation requests with optional filters. The
// zero value lists everything.
type GetRequestsQuery struct {
	status          request.Status
	customerID      *kernel.UUID
	processedBy     *kernel.UUID
	consolidationID *kernel.UUID
}

// NewGetRequestsQuery creates a list query. Every filter is optional.
func NewGetRequestsQuery(
	status request.Status,
	customerID, processedBy, consolidationID *kernel.UUID,
) (GetRequestsQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetRequestsQuery{}, err
		}
	}
	for _, id := range []*kernel.UUID{customerID, processedBy, consolidationID} {
		if id != nil {
			if err := id.Validate(); err != nil {
				return GetRequestsQuery{}, err
			}
		}
	}

	return GetRequestsQuery{
		status:          status,
		customerID:      customerID,
		processedBy:     processedBy,
		consolidationID: consolidationID,
	}, nil
}

// GetRequestsQueryHandler lists requests straight from the database.
type GetRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestsQueryHandler creates a handler for request listings.
func NewGetRequestsQueryHandler(db *gorm.DB) GetRequestsQueryHandler {
	return GetRequestsQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestsQuery,
) ([]RequestResponse, error) {
	var (
		conditions []string
		args       []any
	)
	if query.status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, query.status.String())
	}
	if query.customerID != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, query.customerID.Bytes())
	}
	if query.processedBy != nil {
		conditions = append(conditions, "processed_by = ?")
		args = append(args, query.processedBy.Bytes())
	}
	if query.consolidationID != nil {
		conditions = append(conditions, "consolidation_id = ?")
		args = append(args, query.consolidationID.Bytes())
	}

	sqlText := requestSelect + whereClause(conditions) + " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]RequestResponse, 0)
	for rows.Next() {
		resp, scanErr := scanRequestRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		requests = append(requests, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

const requestSelect = `
	SELECT
		id,
		request_number,
		customer_id,
		status,
		consolidation_id,
		processed_by,
		processed_at,
		rejection_reason,
		notes,
		created_at,
		updated_at
	FROM requests`

// scanRequestRow maps one requests row onto the read model.
func scanRequestRow(row rowScanner) (RequestResponse, error) {
	var (
		resp            RequestResponse
		id              uuid.UUID
		customerID      uuid.UUID
		consolidationID uuid.NullUUID
		processedBy     uuid.NullUUID
		processedAt     sql.NullTime
		rejectionReason sql.NullString
		notes           sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.RequestNumber,
		&customerID,
		&resp.Status,
		&consolidationID,
		&processedBy,
		&processedAt,
		&rejectionReason,
		&notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return RequestResponse{}, err
	}

	if resp.ID, err = uuidFrom(id); err != nil {
		return RequestResponse{}, err
	}
	if resp.CustomerID, err = uuidFrom(customerID); err != nil {
		return RequestResponse{}, err
	}
	if resp.ConsolidationID, err = optionalUUID(consolidationID); err != nil {
		return RequestResponse{}, err
	}
	if resp.ProcessedBy, err = optionalUUID(processedBy); err != nil {
		return RequestResponse{}, err
	}
	resp.ProcessedAt = optionalTime(processedAt)
	resp.RejectionReason = rejectionReason.String
	resp.Notes = notes.String

	return resp, nil
}
