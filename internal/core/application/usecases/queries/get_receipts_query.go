package queries

import (
	"context"
	"database/sql"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReceiptsQuery lists receipts with optional filters. The zero value
// lists everything.
type GetReceiptsQuery struct {
	consolidationID *kernel.UUID
	issuedBy        *kernel.UUID
	startDate       *time.Time
	endDate         *time.Time
}

// NewGetReceiptsQuery creates a list query. Every filter is optional; when
// both dates are set the range must be ordered.
func NewGetReceiptsQuery(
	consolidationID, issuedBy *kernel.UUID,
	startDate, endDate *time.Time,
) (GetReceiptsQuery, error) {
	if consolidationID != nil {
		if err := consolidationID.Validate(); err != nil {
			return GetReceiptsQuery{}, err
		}
	}
	if issuedBy != nil {
		if err := issuedBy.Validate(); err != nil {
			return GetReceiptsQuery{}, err
		}
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return GetReceiptsQuery{}, errs.NewValueIsInvalidError("endDate")
	}

	return GetReceiptsQuery{
		consolidationID: consolidationID,
		issuedBy:        issuedBy,
		startDate:       startDate,
		endDate:         endDate,
	}, nil
}

// GetReceiptsQueryHandler lists receipts straight from the database.
type GetReceiptsQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiptsQueryHandler creates a handler for receipt listings.
func NewGetReceiptsQueryHandler(db *gorm.DB) GetReceiptsQueryHandler {
	return GetReceiptsQueryHandler{db: db}
}

// Handle executes the listing, latest issued first.
func (h GetReceiptsQueryHandler) Handle(
	ctx context.Context,
	query GetReceiptsQuery,
) ([]ReceiptResponse, error) {
	var (
		conditions []string
		args       []any
	)
	if query.consolidationID != nil {
		conditions = append(conditions, "consolidation_id = ?")
		args = append(args, query.consolidationID.Bytes())
	}
	if query.issuedBy != nil {
		conditions = append(conditions, "issued_by = ?")
		args = append(args, query.issuedBy.Bytes())
	}
	if query.startDate != nil {
		conditions = append(conditions, "issued_at >= ?")
		args = append(args, *query.startDate)
	}
	if query.endDate != nil {
		conditions = append(conditions, "issued_at <= ?")
		args = append(args, *query.endDate)
	}

	sqlText := receiptSelect + whereClause(conditions) + " ORDER BY issued_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := make([]ReceiptResponse, 0)
	for rows.Next() {
		resp, scanErr := scanReceiptRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		receipts = append(receipts, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return receipts, nil
}

const receiptSelect = `
	SELECT
		id,
		receipt_number,
		consolidation_id,
		total_parcels,
		total_weight,
		charges_service_fee,
		charges_handling_fee,
		charges_discount,
		charges_total,
		issued_by,
		issued_at,
		updated_at
	FROM receipts`

// scanReceiptRow maps one receipts row onto the read model.
func scanReceiptRow(row rowScanner) (ReceiptResponse, error) {
	var (
		resp            ReceiptResponse
		id              uuid.UUID
		consolidationID uuid.UUID
		totalWeight     sql.NullFloat64
		issuedBy        uuid.NullUUID
	)

	err := row.Scan(
		&id,
		&resp.ReceiptNumber,
		&consolidationID,
		&resp.TotalParcels,
		&totalWeight,
		&resp.Charges.ServiceFee,
		&resp.Charges.HandlingFee,
		&resp.Charges.Discount,
		&resp.Charges.Total,
		&issuedBy,
		&resp.IssuedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ReceiptResponse{}, err
	}

	if resp.ID, err = uuidFrom(id); err != nil {
		return ReceiptResponse{}, err
	}
	if resp.ConsolidationID, err = uuidFrom(consolidationID); err != nil {
		return ReceiptResponse{}, err
	}
	if resp.IssuedBy, err = optionalUUID(issuedBy); err != nil {
		return ReceiptResponse{}, err
	}
	if totalWeight.Valid {
		weight := totalWeight.Float64
		resp.TotalWeight = &weight
	}

	return resp, nil
}
