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

var ErrGetRequestQueryIsNotConstructed = errors.New(
	"GetRequestQuery must be created via a NewGetRequestQueryBy* constructor",
)

// GetRequestQuery retrieves a single consolidation request by identifier or
// request number.
type GetRequestQuery struct {
	id            *kernel.UUID
	requestNumber string

	guard guard.ConstructorGuard
}

// NewGetRequestQueryByID creates a lookup by identifier.
func NewGetRequestQueryByID(id kernel.UUID) (GetRequestQuery, error) {
	if err := id.Validate(); err != nil {
		return GetRequestQuery{}, err
	}
	return GetRequestQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetRequestQueryByNumber creates a lookup by request number.
func NewGetRequestQueryByNumber(requestNumber string) (GetRequestQuery, error) {
	if requestNumber == "" {
		return GetRequestQuery{}, errs.NewValueIsRequiredError("requestNumber")
	}
	return GetRequestQuery{requestNumber: requestNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestQueryIsNotConstructed)
}

// GetRequestQueryHandler retrieves a single request from the database.
type GetRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestQueryHandler creates a handler for single request lookups.
func NewGetRequestQueryHandler(db *gorm.DB) GetRequestQueryHandler {
	return GetRequestQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an ObjectNotFoundError when no
// request matches.
func (h GetRequestQueryHandler) Handle(
	ctx context.Context,
	query GetRequestQuery,
) (RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return RequestResponse{}, err
	}

	var (
		condition string
		arg       any
		key       string
	)
	if query.id != nil {
		condition, arg, key = " WHERE id = ?", query.id.Bytes(), "requestId"
	} else {
		condition, arg, key = " WHERE request_number = ?", query.requestNumber, "requestNumber"
	}

	row := h.db.WithContext(ctx).Raw(requestSelect+condition, arg).Row()
	resp, err := scanRequestRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RequestResponse{}, errs.NewObjectNotFoundErrorWithCause(key, arg, err)
		}
		return RequestResponse{}, err
	}

	return resp, nil
}
