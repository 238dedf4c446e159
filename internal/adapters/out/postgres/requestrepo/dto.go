// Package requestrepo provides data transfer objects and mapping functions
// for consolidation request persistence.
package requestrepo

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates.
type RequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestNumber   string    `gorm:"column:request_number;uniqueIndex;not null"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Status          string    `gorm:"index;not null"`
	ConsolidationID *uuid.UUID `gorm:"type:uuid;index"`
	ProcessedBy     *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	RejectionReason string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request domain aggregate to its database
// representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	var consolidationID *uuid.UUID
	if id := aggregate.ConsolidationID(); id != nil {
		raw := id.Bytes()
		consolidationID = &raw
	}
	var processedBy *uuid.UUID
	if id := aggregate.ProcessedBy(); id != nil {
		raw := id.Bytes()
		processedBy = &raw
	}

	return RequestDTO{
		ID:              aggregate.ID().Bytes(),
		RequestNumber:   aggregate.RequestNumber(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Status:          aggregate.Status().String(),
		ConsolidationID: consolidationID,
		ProcessedBy:     processedBy,
		ProcessedAt:     aggregate.ProcessedAt(),
		RejectionReason: aggregate.RejectionReason(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a request domain aggregate using
// RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var consolidationID *kernel.UUID
	if dto.ConsolidationID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.ConsolidationID)[:])
		if cErr != nil {
			return nil, cErr
		}
		consolidationID = &cID
	}
	var processedBy *kernel.UUID
	if dto.ProcessedBy != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.ProcessedBy)[:])
		if pErr != nil {
			return nil, pErr
		}
		processedBy = &pID
	}

	return request.RestoreRequest(
		id,
		dto.RequestNumber,
		customerID,
		request.Status(dto.Status),
		consolidationID,
		processedBy,
		dto.ProcessedAt,
		dto.RejectionReason,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}
