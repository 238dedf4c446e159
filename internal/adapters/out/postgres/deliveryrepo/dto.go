// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"encoding/json"
	"time"

	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Locations and the ping history are stored as JSONB documents.
type DeliveryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsolidationID uuid.UUID `gorm:"type:uuid;index;not null"`
	DriverID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Status          string    `gorm:"index;not null"`
	StartTime       *time.Time
	EndTime         *time.Time
	ActualDelivery  *time.Time
	StartLocation   []byte `gorm:"type:jsonb"`
	EndLocation     []byte `gorm:"type:jsonb"`
	CurrentLocation []byte `gorm:"type:jsonb"`
	LocationHistory []byte `gorm:"type:jsonb"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// geoPointDTO is the JSON shape of a stored geographic position.
type geoPointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// pingDTO is the JSON shape of one location history element.
type pingDTO struct {
	Point     geoPointDTO `json:"point"`
	Timestamp time.Time   `json:"timestamp"`
}

func marshalGeoPoint(point *kernel.GeoPoint) ([]byte, error) {
	if point == nil {
		return nil, nil
	}
	return json.Marshal(geoPointDTO{
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
		Address:   point.Address(),
	})
}

func unmarshalGeoPoint(raw []byte) (*kernel.GeoPoint, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var dto geoPointDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude, dto.Address)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func pingToDTO(ping delivery.LocationPing) pingDTO {
	return pingDTO{
		Point: geoPointDTO{
			Latitude:  ping.Point.Latitude(),
			Longitude: ping.Point.Longitude(),
			Address:   ping.Point.Address(),
		},
		Timestamp: ping.Timestamp,
	}
}

func pingFromDTO(dto pingDTO) (delivery.LocationPing, error) {
	point, err := kernel.NewGeoPoint(dto.Point.Latitude, dto.Point.Longitude, dto.Point.Address)
	if err != nil {
		return delivery.LocationPing{}, err
	}
	return delivery.LocationPing{Point: point, Timestamp: dto.Timestamp}, nil
}

// fromDomain converts a delivery domain aggregate to its database
// representation.
func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, error) {
	startLocation, err := marshalGeoPoint(aggregate.StartLocation())
	if err != nil {
		return DeliveryDTO{}, err
	}
	endLocation, err := marshalGeoPoint(aggregate.EndLocation())
	if err != nil {
		return DeliveryDTO{}, err
	}

	var currentLocation []byte
	if ping := aggregate.CurrentLocation(); ping != nil {
		if currentLocation, err = json.Marshal(pingToDTO(*ping)); err != nil {
			return DeliveryDTO{}, err
		}
	}

	pings := make([]pingDTO, 0, len(aggregate.LocationHistory()))
	for _, ping := range aggregate.LocationHistory() {
		pings = append(pings, pingToDTO(ping))
	}
	locationHistory, err := json.Marshal(pings)
	if err != nil {
		return DeliveryDTO{}, err
	}

	return DeliveryDTO{
		ID:              aggregate.ID().Bytes(),
		ConsolidationID: aggregate.ConsolidationID().Bytes(),
		DriverID:        aggregate.DriverID().Bytes(),
		Status:          aggregate.Status().String(),
		StartTime:       aggregate.StartTime(),
		EndTime:         aggregate.EndTime(),
		ActualDelivery:  aggregate.ActualDeliveryTime(),
		StartLocation:   startLocation,
		EndLocation:     endLocation,
		CurrentLocation: currentLocation,
		LocationHistory: locationHistory,
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a delivery domain aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	consolidationID, err := kernel.UUIDFromBytes(dto.ConsolidationID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	startLocation, err := unmarshalGeoPoint(dto.StartLocation)
	if err != nil {
		return nil, err
	}
	endLocation, err := unmarshalGeoPoint(dto.EndLocation)
	if err != nil {
		return nil, err
	}

	var currentLocation *delivery.LocationPing
	if len(dto.CurrentLocation) > 0 {
		var pingRaw pingDTO
		if err = json.Unmarshal(dto.CurrentLocation, &pingRaw); err != nil {
			return nil, err
		}
		ping, pingErr := pingFromDTO(pingRaw)
		if pingErr != nil {
			return nil, pingErr
		}
		currentLocation = &ping
	}

	var pingRaws []pingDTO
	if len(dto.LocationHistory) > 0 {
		if err = json.Unmarshal(dto.LocationHistory, &pingRaws); err != nil {
			return nil, err
		}
	}
	locationHistory := make([]delivery.LocationPing, 0, len(pingRaws))
	for _, pingRaw := range pingRaws {
		ping, pingErr := pingFromDTO(pingRaw)
		if pingErr != nil {
			return nil, pingErr
		}
		locationHistory = append(locationHistory, ping)
	}

	return delivery.RestoreDelivery(
		id, consolidationID, driverID,
		delivery.Status(dto.Status),
		dto.StartTime, dto.EndTime, dto.ActualDelivery,
		startLocation, endLocation,
		currentLocation,
		locationHistory,
		dto.Notes,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
