// Package receiptrepo provides data transfer objects and mapping functions
// for receipt persistence.
package receiptrepo

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"

	"github.com/google/uuid"
)

// ReceiptDTO represents the database structure for persisting receipt
// aggregates. The charge breakdown is flattened into columns; the stored
// total always equals serviceFee + handlingFee - discount because it is
// computed by the domain, never taken from input.
type ReceiptDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReceiptNumber      string    `gorm:"column:receipt_number;uniqueIndex;not null"`
	ConsolidationID    uuid.UUID `gorm:"type:uuid;index;not null"`
	TotalParcels       int       `gorm:"not null"`
	TotalWeight        *float64
	ChargesServiceFee  float64    `gorm:"column:charges_service_fee"`
	ChargesHandlingFee float64    `gorm:"column:charges_handling_fee"`
	ChargesDiscount    float64    `gorm:"column:charges_discount"`
	ChargesTotal       float64    `gorm:"column:charges_total"`
	IssuedBy           *uuid.UUID `gorm:"type:uuid;index"`
	IssuedAt           time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for receipt entities.
func (ReceiptDTO) TableName() string {
	return "receipts"
}

// fromDomain converts a receipt domain aggregate to its database
// representation.
func fromDomain(aggregate *receipt.Receipt) ReceiptDTO {
	var issuedBy *uuid.UUID
	if id := aggregate.IssuedBy(); id != nil {
		raw := id.Bytes()
		issuedBy = &raw
	}

	charges := aggregate.Charges()

	return ReceiptDTO{
		ID:                 aggregate.ID().Bytes(),
		ReceiptNumber:      aggregate.ReceiptNumber(),
		ConsolidationID:    aggregate.ConsolidationID().Bytes(),
		TotalParcels:       aggregate.TotalParcels(),
		TotalWeight:        aggregate.TotalWeight(),
		ChargesServiceFee:  charges.ServiceFee(),
		ChargesHandlingFee: charges.HandlingFee(),
		ChargesDiscount:    charges.Discount(),
		ChargesTotal:       charges.Total(),
		IssuedBy:           issuedBy,
		IssuedAt:           aggregate.IssuedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a receipt domain aggregate using
// RestoreReceipt.
func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	consolidationID, err := kernel.UUIDFromBytes(dto.ConsolidationID[:])
	if err != nil {
		return nil, err
	}

	var issuedBy *kernel.UUID
	if dto.IssuedBy != nil {
		issuerID, issuerErr := kernel.UUIDFromBytes((*dto.IssuedBy)[:])
		if issuerErr != nil {
			return nil, issuerErr
		}
		issuedBy = &issuerID
	}

	charges, err := receipt.NewCharges(dto.ChargesServiceFee, dto.ChargesHandlingFee, dto.ChargesDiscount)
	if err != nil {
		return nil, err
	}

	return receipt.RestoreReceipt(
		id,
		dto.ReceiptNumber,
		consolidationID,
		dto.TotalParcels,
		dto.TotalWeight,
		charges,
		issuedBy,
		dto.IssuedAt,
		dto.UpdatedAt,
	), nil
}
