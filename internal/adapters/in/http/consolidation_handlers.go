package http

import (
	"net/http"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// respondConsolidation reads the consolidation back and writes it with the
// given status. Mutations go through this so responses always carry the
// persisted state, delivery projection included.
func (s *Server) respondConsolidation(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetConsolidationQueryByID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetConsolidation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toWireConsolidation(resp))
}

// CreateConsolidation handles POST /consolidations.
func (s *Server) CreateConsolidation(ctx echo.Context) error {
	var body servers.CreateConsolidationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	createdBy, err := domainUUID(body.CreatedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}
	warehouseID, err := optionalDomainUUID(body.WarehouseId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var parcels []string
	if body.Parcels != nil {
		parcels = *body.Parcels
	}

	consolidationID := kernel.NewUUID()
	cmd, err := commands.NewCreateConsolidationCommand(
		consolidationID,
		body.ReferenceCode,
		deref(body.MasterTrackingNumber),
		createdBy,
		warehouseID,
		consolidation.Status(deref(body.Status)),
		parcels,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.CreateConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondConsolidation(ctx, http.StatusCreated, consolidationID)
}

// ListConsolidations handles GET /consolidations.
func (s *Server) ListConsolidations(ctx echo.Context, params servers.ListConsolidationsParams) error {
	warehouseID, err := optionalDomainUUID(params.WarehouseId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	createdBy, err := optionalDomainUUID(params.CreatedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}
	assignedDriver, err := optionalDomainUUID(params.AssignedDriver)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetConsolidationsQuery(
		consolidation.Status(deref(params.Status)),
		warehouseID,
		createdBy,
		assignedDriver,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items, err := s.queries.GetConsolidations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Consolidation, len(items))
	for i, item := range items {
		response[i] = toWireConsolidation(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetConsolidationById handles GET /consolidations/id/{id}.
func (s *Server) GetConsolidationById(ctx echo.Context, id openapi_types.UUID) error {
	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondConsolidation(ctx, http.StatusOK, consolidationID)
}

// GetConsolidationByReference handles GET /consolidations/reference/{referenceCode}.
func (s *Server) GetConsolidationByReference(ctx echo.Context, referenceCode string) error {
	query, err := queries.NewGetConsolidationQueryByReferenceCode(referenceCode)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetConsolidation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWireConsolidation(resp))
}

// GetConsolidationByTracking handles GET /consolidations/tracking/{trackingNumber}.
func (s *Server) GetConsolidationByTracking(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewGetConsolidationQueryByTrackingNumber(trackingNumber)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetConsolidation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWireConsolidation(resp))
}

// UpdateConsolidation handles PUT /consolidations/{id}.
func (s *Server) UpdateConsolidation(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateConsolidationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	warehouseID, err := optionalDomainUUID(body.WarehouseId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var parcels []string
	replaceParcels := body.Parcels != nil
	if replaceParcels {
		parcels = *body.Parcels
	}

	cmd, err := commands.NewUpdateConsolidationCommand(consolidationID, warehouseID, parcels, replaceParcels)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondConsolidation(ctx, http.StatusOK, consolidationID)
}

// DeleteConsolidation handles DELETE /consolidations/{id}.
func (s *Server) DeleteConsolidation(ctx echo.Context, id openapi_types.UUID) error {
	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteConsolidationCommand(consolidationID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.DeleteConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateConsolidationStatus handles PATCH /consolidations/{id}/status.
func (s *Server) UpdateConsolidationStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateConsolidationStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var location *kernel.GeoPoint
	if body.Location != nil {
		point, perr := kernel.NewGeoPoint(
			body.Location.Latitude,
			body.Location.Longitude,
			deref(body.Location.Address),
		)
		if perr != nil {
			return s.writeError(ctx, perr)
		}
		location = &point
	}

	cmd, err := commands.NewUpdateConsolidationStatusCommand(
		consolidationID,
		consolidation.Status(body.Status),
		deref(body.Note),
		location,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateConsolidationStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondConsolidation(ctx, http.StatusOK, consolidationID)
}

// AssignDriver handles PATCH /consolidations/{id}/assign-driver. A new
// delivery is created alongside the assignment.
func (s *Server) AssignDriver(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.AssignDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	driverID, err := domainUUID(body.DriverId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(consolidationID, driverID, kernel.NewUUID())
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondConsolidation(ctx, http.StatusOK, consolidationID)
}

// AddParcel handles POST /consolidations/{id}/parcels.
func (s *Server) AddParcel(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.AddParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddParcelCommand(consolidationID, body.ParcelId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.AddParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondConsolidation(ctx, http.StatusOK, consolidationID)
}

// RemoveParcel handles DELETE /consolidations/{id}/parcels/{parcelId}.
func (s *Server) RemoveParcel(ctx echo.Context, id openapi_types.UUID, parcelId string) error {
	consolidationID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveParcelCommand(consolidationID, parcelId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.RemoveParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondConsolidation(ctx, http.StatusOK, consolidationID)
}
