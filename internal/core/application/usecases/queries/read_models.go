// Package queries contains read-only operations that bypass the domain
// aggregates and read projection-friendly models straight from the database.
// Implements the query side of the CQRS architecture.
package queries

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
)

// GeoPointResponse is the read model of a recorded geographic position.
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// HistoryEntryResponse is the read model of one status history entry.
type HistoryEntryResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Note      string            `json:"note,omitempty"`
	Location  *GeoPointResponse `json:"location,omitempty"`
}

// LocationPingResponse is the read model of one driver position ping.
type LocationPingResponse struct {
	Point     GeoPointResponse `json:"point"`
	Timestamp time.Time        `json:"timestamp"`
}

// DeliveryProgressResponse is the delivery projection attached to a
// consolidation read. It is computed from the latest delivery on every read
// instead of being stored on the consolidation.
type DeliveryProgressResponse struct {
	DeliveryID      kernel.UUID           `json:"deliveryId"`
	Status          string                `json:"status"`
	StartTime       *time.Time            `json:"startTime,omitempty"`
	EndTime         *time.Time            `json:"endTime,omitempty"`
	CurrentLocation *LocationPingResponse `json:"currentLocation,omitempty"`
}

// ConsolidationResponse is the read model of a consolidation.
type ConsolidationResponse struct {
	ID                   kernel.UUID               `json:"id"`
	ReferenceCode        string                    `json:"referenceCode"`
	MasterTrackingNumber string                    `json:"masterTrackingNumber"`
	Status               string                    `json:"status"`
	History              []HistoryEntryResponse    `json:"statusHistory"`
	Parcels              []string                  `json:"parcels"`
	CreatedBy            kernel.UUID               `json:"createdBy"`
	AssignedDriver       *kernel.UUID              `json:"assignedDriver,omitempty"`
	WarehouseID          *kernel.UUID              `json:"warehouseId,omitempty"`
	DeliveryStatus       *DeliveryProgressResponse `json:"deliveryStatus,omitempty"`
	CreatedAt            time.Time                 `json:"createdAt"`
	UpdatedAt            time.Time                 `json:"updatedAt"`
}

// DeliveryResponse is the read model of a delivery.
type DeliveryResponse struct {
	ID              kernel.UUID            `json:"id"`
	ConsolidationID kernel.UUID            `json:"consolidationId"`
	DriverID        kernel.UUID            `json:"driverId"`
	Status          string                 `json:"status"`
	StartTime       *time.Time             `json:"startTime,omitempty"`
	EndTime         *time.Time             `json:"endTime,omitempty"`
	ActualDelivery  *time.Time             `json:"actualDelivery,omitempty"`
	StartLocation   *GeoPointResponse      `json:"startLocation,omitempty"`
	EndLocation     *GeoPointResponse      `json:"endLocation,omitempty"`
	CurrentLocation *LocationPingResponse  `json:"currentLocation,omitempty"`
	LocationHistory []LocationPingResponse `json:"locationHistory"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// ChargesResponse is the read model of a receipt's charge breakdown. The
// total always equals serviceFee + handlingFee - discount.
type ChargesResponse struct {
	ServiceFee  float64 `json:"serviceFee"`
	HandlingFee float64 `json:"handlingFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// ReceiptResponse is the read model of a receipt.
type ReceiptResponse struct {
	ID              kernel.UUID     `json:"id"`
	ReceiptNumber   string          `json:"receiptNumber"`
	ConsolidationID kernel.UUID     `json:"consolidationId"`
	TotalParcels    int             `json:"totalParcels"`
	TotalWeight     *float64        `json:"totalWeight,omitempty"`
	Charges         ChargesResponse `json:"charges"`
	IssuedBy        *kernel.UUID    `json:"issuedBy,omitempty"`
	IssuedAt        time.Time       `json:"issuedAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// RequestResponse is the read model of a request.
type RequestResponse struct {
	ID              kernel.UUID  `json:"id"`
	RequestNumber   string       `json:"requestNumber"`
	CustomerID      kernel.UUID  `json:"customerId"`
	Status          string       `json:"status"`
	ConsolidationID *kernel.UUID `json:"consolidationId,omitempty"`
	ProcessedBy     *kernel.UUID `json:"processedBy,omitempty"`
	ProcessedAt     *time.Time   `json:"processedAt,omitempty"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
