package consolidationrepo

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConsolidationRepository implements ConsolidationRepository using GORM.
type GormConsolidationRepository struct {
	db *gorm.DB
}

// NewGormConsolidationRepository creates a new GORM consolidation repository.
func NewGormConsolidationRepository(db *gorm.DB) *GormConsolidationRepository {
	return &GormConsolidationRepository{db: db}
}

// Add saves a new consolidation to the database. A unique index violation on
// the reference code or tracking number surfaces as ObjectAlreadyExistsError.
func (r *GormConsolidationRepository) Add(ctx context.Context, aggregate *consolidation.Consolidation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"consolidation", aggregate.ReferenceCode(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing consolidation to the database.
func (r *GormConsolidationRepository) Update(ctx context.Context, aggregate *consolidation.Consolidation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&ConsolidationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consolidation", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a consolidation by ID.
func (r *GormConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByReferenceCode retrieves a consolidation by its reference code.
func (r *GormConsolidationRepository) GetByReferenceCode(
	ctx context.Context,
	referenceCode string,
) (*consolidation.Consolidation, error) {
	if referenceCode == "" {
		return nil, errs.NewValueIsRequiredError("referenceCode")
	}

	return r.getOne(ctx, "reference_code = ?", referenceCode, referenceCode)
}

// GetByTrackingNumber retrieves a consolidation by its master tracking number.
func (r *GormConsolidationRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*consolidation.Consolidation, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	return r.getOne(ctx, "master_tracking_number = ?", trackingNumber, trackingNumber)
}

// ExistsByReferenceCode reports whether the reference code is taken.
func (r *GormConsolidationRepository) ExistsByReferenceCode(
	ctx context.Context,
	referenceCode string,
) (bool, error) {
	if referenceCode == "" {
		return false, errs.NewValueIsRequiredError("referenceCode")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ConsolidationDTO{}).
		Where("reference_code = ?", referenceCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsByTrackingNumber reports whether the master tracking number is taken.
func (r *GormConsolidationRepository) ExistsByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (bool, error) {
	if trackingNumber == "" {
		return false, errs.NewValueIsRequiredError("trackingNumber")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ConsolidationDTO{}).
		Where("master_tracking_number = ?", trackingNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a consolidation by ID.
func (r *GormConsolidationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ConsolidationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consolidation", id.String())
	}

	return nil
}

func (r *GormConsolidationRepository) getOne(
	ctx context.Context,
	condition string,
	arg any,
	key string,
) (*consolidation.Consolidation, error) {
	var dto ConsolidationDTO
	if err := r.db.WithContext(ctx).First(&dto, condition, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consolidation", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
