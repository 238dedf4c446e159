package receiptrepo

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"
	"consolidation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Add saves a new receipt to the database. A unique index violation on the
// receipt number surfaces as ObjectAlreadyExistsError.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"receipt", aggregate.ReceiptNumber(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing receipt to the database.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReceiptDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("receipt", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a receipt by ID.
func (r *GormReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a receipt by its receipt number.
func (r *GormReceiptRepository) GetByNumber(
	ctx context.Context,
	receiptNumber string,
) (*receipt.Receipt, error) {
	if receiptNumber == "" {
		return nil, errs.NewValueIsRequiredError("receiptNumber")
	}

	var dto ReceiptDTO
	err := r.db.WithContext(ctx).First(&dto, "receipt_number = ?", receiptNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", receiptNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a receipt by ID.
func (r *GormReceiptRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReceiptDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("receipt", id.String())
	}

	return nil
}
