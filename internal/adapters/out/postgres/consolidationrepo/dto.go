// Package consolidationrepo provides data transfer objects and mapping
// functions for consolidation persistence. This package implements the
// repository pattern for the consolidation domain aggregate, handling the
// conversion between domain entities and database representations.
package consolidationrepo

import (
	"encoding/json"
	"time"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ConsolidationDTO represents the database structure for persisting
// consolidation aggregates. The business keys carry unique indexes so the
// database enforces global uniqueness of reference codes and master tracking
// numbers. History is stored as a JSONB document; parcels as a text array.
type ConsolidationDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ReferenceCode        string         `gorm:"uniqueIndex;not null"`
	MasterTrackingNumber string         `gorm:"uniqueIndex;not null"`
	Status               string         `gorm:"index;not null"`
	History              []byte         `gorm:"type:jsonb"`
	Parcels              pq.StringArray `gorm:"type:text[]"`
	CreatedBy            uuid.UUID      `gorm:"type:uuid;index"`
	AssignedDriver       *uuid.UUID     `gorm:"type:uuid;index"`
	WarehouseID          *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for consolidation entities.
func (ConsolidationDTO) TableName() string {
	return "consolidations"
}

// geoPointDTO is the JSON shape of a stored geographic position. The keys
// match the read models served by the query side.
type geoPointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// historyEntryDTO is the JSON shape of one status history element.
type historyEntryDTO struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Note      string       `json:"note,omitempty"`
	Location  *geoPointDTO `json:"location,omitempty"`
}

func geoPointToDTO(point *kernel.GeoPoint) *geoPointDTO {
	if point == nil {
		return nil
	}
	return &geoPointDTO{
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
		Address:   point.Address(),
	}
}

func geoPointFromDTO(dto *geoPointDTO) (*kernel.GeoPoint, error) {
	if dto == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude, dto.Address)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// fromDomain converts a consolidation domain aggregate to its database
// representation.
func fromDomain(aggregate *consolidation.Consolidation) (ConsolidationDTO, error) {
	entries := make([]historyEntryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		entries = append(entries, historyEntryDTO{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
			Location:  geoPointToDTO(entry.Location),
		})
	}
	history, err := json.Marshal(entries)
	if err != nil {
		return ConsolidationDTO{}, err
	}

	var assignedDriver *uuid.UUID
	if id := aggregate.AssignedDriver(); id != nil {
		raw := id.Bytes()
		assignedDriver = &raw
	}
	var warehouseID *uuid.UUID
	if id := aggregate.WarehouseID(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	return ConsolidationDTO{
		ID:                   aggregate.ID().Bytes(),
		ReferenceCode:        aggregate.ReferenceCode(),
		MasterTrackingNumber: aggregate.MasterTrackingNumber(),
		Status:               aggregate.Status().String(),
		History:              history,
		Parcels:              pq.StringArray(aggregate.Parcels()),
		CreatedBy:            aggregate.CreatedBy().Bytes(),
		AssignedDriver:       assignedDriver,
		WarehouseID:          warehouseID,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a consolidation domain aggregate.
// Reconstructs the complete aggregate including history via
// RestoreConsolidation.
func toDomain(dto ConsolidationDTO) (*consolidation.Consolidation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var assignedDriver *kernel.UUID
	if dto.AssignedDriver != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriver)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		assignedDriver = &driverID
	}
	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		whID, whErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if whErr != nil {
			return nil, whErr
		}
		warehouseID = &whID
	}

	var entries []historyEntryDTO
	if len(dto.History) > 0 {
		if err = json.Unmarshal(dto.History, &entries); err != nil {
			return nil, err
		}
	}
	history := make([]consolidation.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		location, locErr := geoPointFromDTO(entry.Location)
		if locErr != nil {
			return nil, locErr
		}
		history = append(history, consolidation.HistoryEntry{
			Status:    consolidation.Status(entry.Status),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
			Location:  location,
		})
	}

	return consolidation.RestoreConsolidation(
		id,
		dto.ReferenceCode,
		dto.MasterTrackingNumber,
		consolidation.Status(dto.Status),
		history,
		[]string(dto.Parcels),
		createdBy,
		assignedDriver,
		warehouseID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
