package http

import (
	"net/http"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// respondDelivery reads the delivery back and writes it with the given status.
func (s *Server) respondDelivery(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetDeliveryQueryByID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toWireDelivery(resp))
}

// listDeliveries runs a delivery listing and writes the result.
func (s *Server) listDeliveries(ctx echo.Context, query queries.GetDeliveriesQuery) error {
	items, err := s.queries.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Delivery, len(items))
	for i, item := range items {
		response[i] = toWireDelivery(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignDelivery handles POST /deliveries/assign. It creates a delivery and
// assigns its driver to the consolidation in one transaction.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var body servers.AssignDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	consolidationID, err := domainUUID(body.ConsolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	driverID, err := domainUUID(body.DriverId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(consolidationID, driverID, deliveryID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondDelivery(ctx, http.StatusCreated, deliveryID)
}

// ListDeliveries handles GET /deliveries.
func (s *Server) ListDeliveries(ctx echo.Context, params servers.ListDeliveriesParams) error {
	driverID, err := optionalDomainUUID(params.DriverId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery(delivery.Status(deref(params.Status)), driverID, false)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listDeliveries(ctx, query)
}

// ListActiveDeliveries handles GET /deliveries/active.
func (s *Server) ListActiveDeliveries(ctx echo.Context) error {
	query, err := queries.NewGetDeliveriesQuery("", nil, true)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listDeliveries(ctx, query)
}

// ListDeliveriesByDriver handles GET /deliveries/driver/{driverId}.
func (s *Server) ListDeliveriesByDriver(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := domainUUID(driverId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery("", &driverID, false)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listDeliveries(ctx, query)
}

// GetLatestDeliveryByConsolidation handles GET /deliveries/consolidation/{consolidationId}.
func (s *Server) GetLatestDeliveryByConsolidation(ctx echo.Context, consolidationId openapi_types.UUID) error {
	consolidationID, err := domainUUID(consolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQueryByConsolidationID(consolidationID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWireDelivery(resp))
}

// GetDeliveryById handles GET /deliveries/{id}.
func (s *Server) GetDeliveryById(ctx echo.Context, id openapi_types.UUID) error {
	deliveryID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}

// StartDelivery handles POST /deliveries/{id}/start.
func (s *Server) StartDelivery(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.StartDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	deliveryID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude, deref(body.Address))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(deliveryID, location)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.StartDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}

// EndDelivery handles POST /deliveries/{id}/end.
func (s *Server) EndDelivery(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.EndDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	deliveryID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude, deref(body.Address))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewEndDeliveryCommand(deliveryID, location, deref(body.Notes))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.EndDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}

// UpdateDeliveryLocation handles PATCH /deliveries/{id}/location.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateDeliveryLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	deliveryID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude, deref(body.Address))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(deliveryID, location)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateDriverLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}
