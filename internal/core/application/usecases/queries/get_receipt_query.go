package queries

import (
	"context"
	"database/sql"
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via a NewGetReceiptQueryBy* constructor",
)

// GetReceiptQuery retrieves a single receipt by identifier or receipt number.
type GetReceiptQuery struct {
	id            *kernel.UUID
	receiptNumber string

	guard guard.ConstructorGuard
}

// NewGetReceiptQueryByID creates a lookup by identifier.
func NewGetReceiptQueryByID(id kernel.UUID) (GetReceiptQuery, error) {
	if err := id.Validate(); err != nil {
		return GetReceiptQuery{}, err
	}
	return GetReceiptQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetReceiptQueryByNumber creates a lookup by receipt number.
func NewGetReceiptQueryByNumber(receiptNumber string) (GetReceiptQuery, error) {
	if receiptNumber == "" {
		return GetReceiptQuery{}, errs.NewValueIsRequiredError("receiptNumber")
	}
	return GetReceiptQuery{receiptNumber: receiptNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// GetReceiptQueryHandler retrieves a single receipt from the database.
type GetReceiptQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiptQueryHandler creates a handler for single receipt lookups.
func NewGetReceiptQueryHandler(db *gorm.DB) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an ObjectNotFoundError when no
// receipt matches.
func (h GetReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetReceiptQuery,
) (ReceiptResponse, error) {
	if err := query.Validate(); err != nil {
		return ReceiptResponse{}, err
	}

	var (
		condition string
		arg       any
		key       string
	)
	if query.id != nil {
		condition, arg, key = " WHERE id = ?", query.id.Bytes(), "receiptId"
	} else {
		condition, arg, key = " WHERE receipt_number = ?", query.receiptNumber, "receiptNumber"
	}

	row := h.db.WithContext(ctx).Raw(receiptSelect+condition, arg).Row()
	resp, err := scanReceiptRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReceiptResponse{}, errs.NewObjectNotFoundErrorWithCause(key, arg, err)
		}
		return ReceiptResponse{}, err
	}

	return resp, nil
}
