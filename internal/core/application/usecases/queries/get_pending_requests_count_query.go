package queries

import (
	"context"

	"consolidation/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// PendingRequestsCountResponse is the read model of the pending requests
// counter shown on operator dashboards.
type PendingRequestsCountResponse struct {
	Count int64 `json:"count"`
}

// GetPendingRequestsCountQueryHandler counts requests awaiting review.
type GetPendingRequestsCountQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestsCountQueryHandler creates a handler for the pending
// requests counter.
func NewGetPendingRequestsCountQueryHandler(db *gorm.DB) GetPendingRequestsCountQueryHandler {
	return GetPendingRequestsCountQueryHandler{db: db}
}

// Handle counts requests still in the submitted status.
func (h GetPendingRequestsCountQueryHandler) Handle(
	ctx context.Context,
) (PendingRequestsCountResponse, error) {
	var count int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM requests WHERE status = ?", request.StatusSubmitted.String()).
		Scan(&count).Error
	if err != nil {
		return PendingRequestsCountResponse{}, err
	}

	return PendingRequestsCountResponse{Count: count}, nil
}
