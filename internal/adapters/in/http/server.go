// Package http implements the inbound HTTP adapter. Server implements the
// generated ServerInterface and translates between the wire types and the
// application layer's commands and queries.
package http

import (
	"errors"
	"net/http"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/generated/servers"
	"consolidation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Commands bundles every command handler the HTTP surface dispatches to.
type Commands struct {
	CreateConsolidation       commands.CreateConsolidationCommandHandler
	UpdateConsolidationStatus commands.UpdateConsolidationStatusCommandHandler
	AssignDriver              commands.AssignDriverCommandHandler
	AddParcel                 commands.AddParcelCommandHandler
	RemoveParcel              commands.RemoveParcelCommandHandler
	UpdateConsolidation       commands.UpdateConsolidationCommandHandler
	DeleteConsolidation       commands.DeleteConsolidationCommandHandler

	StartDelivery        commands.StartDeliveryCommandHandler
	EndDelivery          commands.EndDeliveryCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler

	CreateReceipt        commands.CreateReceiptCommandHandler
	UpdateReceiptCharges commands.UpdateReceiptChargesCommandHandler
	UpdateReceipt        commands.UpdateReceiptCommandHandler
	DeleteReceipt        commands.DeleteReceiptCommandHandler

	CreateRequest       commands.CreateRequestCommandHandler
	ApproveRequest      commands.ApproveRequestCommandHandler
	RejectRequest       commands.RejectRequestCommandHandler
	ProcessRequest      commands.ProcessRequestCommandHandler
	UpdateRequestStatus commands.UpdateRequestStatusCommandHandler
	UpdateRequest       commands.UpdateRequestCommandHandler
	DeleteRequest       commands.DeleteRequestCommandHandler

	GenerateBusinessNumber commands.GenerateBusinessNumberCommandHandler
}

// Queries bundles every query handler the HTTP surface reads from.
type Queries struct {
	GetConsolidations       queries.GetConsolidationsQueryHandler
	GetConsolidation        queries.GetConsolidationQueryHandler
	GetDeliveries           queries.GetDeliveriesQueryHandler
	GetDelivery             queries.GetDeliveryQueryHandler
	GetReceipts             queries.GetReceiptsQueryHandler
	GetReceipt              queries.GetReceiptQueryHandler
	GetRequests             queries.GetRequestsQueryHandler
	GetRequest              queries.GetRequestQueryHandler
	GetPendingRequestsCount queries.GetPendingRequestsCountQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(cmds Commands, qrs Queries) *Server {
	return &Server{commands: cmds, queries: qrs}
}

// writeError maps application errors onto HTTP statuses: missing or invalid
// input gives 400, unknown objects give 404, duplicates and illegal status
// transitions give 409, everything else 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	details := err.Error()
	return ctx.JSON(status, servers.Error{
		Error:   http.StatusText(status),
		Details: &details,
	})
}

// badRequest reports an unparseable request body.
func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Error:   http.StatusText(http.StatusBadRequest),
		Details: &message,
	})
}

func domainUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalDomainUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := domainUUID(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func wireUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func toWireGeoPoint(point *queries.GeoPointResponse) *servers.GeoPoint {
	if point == nil {
		return nil
	}
	return &servers.GeoPoint{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		Address:   optionalString(point.Address),
	}
}

func toWirePing(ping *queries.LocationPingResponse) *servers.LocationPing {
	if ping == nil {
		return nil
	}
	return &servers.LocationPing{
		Point: servers.GeoPoint{
			Latitude:  ping.Point.Latitude,
			Longitude: ping.Point.Longitude,
			Address:   optionalString(ping.Point.Address),
		},
		Timestamp: ping.Timestamp,
	}
}

func toWireConsolidation(resp queries.ConsolidationResponse) servers.Consolidation {
	history := make([]servers.HistoryEntry, 0, len(resp.History))
	for _, entry := range resp.History {
		history = append(history, servers.HistoryEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Note:      optionalString(entry.Note),
			Location:  toWireGeoPoint(entry.Location),
		})
	}

	var progress *servers.DeliveryProgress
	if resp.DeliveryStatus != nil {
		progress = &servers.DeliveryProgress{
			DeliveryId:      resp.DeliveryStatus.DeliveryID.Bytes(),
			Status:          resp.DeliveryStatus.Status,
			StartTime:       resp.DeliveryStatus.StartTime,
			EndTime:         resp.DeliveryStatus.EndTime,
			CurrentLocation: toWirePing(resp.DeliveryStatus.CurrentLocation),
		}
	}

	return servers.Consolidation{
		Id:                   resp.ID.Bytes(),
		ReferenceCode:        resp.ReferenceCode,
		MasterTrackingNumber: resp.MasterTrackingNumber,
		Status:               resp.Status,
		StatusHistory:        history,
		Parcels:              resp.Parcels,
		CreatedBy:            resp.CreatedBy.Bytes(),
		AssignedDriver:       wireUUID(resp.AssignedDriver),
		WarehouseId:          wireUUID(resp.WarehouseID),
		DeliveryStatus:       progress,
		CreatedAt:            resp.CreatedAt,
		UpdatedAt:            resp.UpdatedAt,
	}
}

func toWireDelivery(resp queries.DeliveryResponse) servers.Delivery {
	pings := make([]servers.LocationPing, 0, len(resp.LocationHistory))
	for i := range resp.LocationHistory {
		pings = append(pings, *toWirePing(&resp.LocationHistory[i]))
	}

	return servers.Delivery{
		Id:              resp.ID.Bytes(),
		ConsolidationId: resp.ConsolidationID.Bytes(),
		DriverId:        resp.DriverID.Bytes(),
		Status:          resp.Status,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		ActualDelivery:  resp.ActualDelivery,
		StartLocation:   toWireGeoPoint(resp.StartLocation),
		EndLocation:     toWireGeoPoint(resp.EndLocation),
		CurrentLocation: toWirePing(resp.CurrentLocation),
		LocationHistory: pings,
		Notes:           optionalString(resp.Notes),
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}

func toWireReceipt(resp queries.ReceiptResponse) servers.Receipt {
	return servers.Receipt{
		Id:              resp.ID.Bytes(),
		ReceiptNumber:   resp.ReceiptNumber,
		ConsolidationId: resp.ConsolidationID.Bytes(),
		TotalParcels:    resp.TotalParcels,
		TotalWeight:     resp.TotalWeight,
		Charges: servers.ChargesBreakdown{
			ServiceFee:  resp.Charges.ServiceFee,
			HandlingFee: resp.Charges.HandlingFee,
			Discount:    resp.Charges.Discount,
			Total:       resp.Charges.Total,
		},
		IssuedBy:  wireUUID(resp.IssuedBy),
		IssuedAt:  resp.IssuedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}

func toWireRequest(resp queries.RequestResponse) servers.Request {
	return servers.Request{
		Id:              resp.ID.Bytes(),
		RequestNumber:   resp.RequestNumber,
		CustomerId:      resp.CustomerID.Bytes(),
		Status:          resp.Status,
		ConsolidationId: wireUUID(resp.ConsolidationID),
		ProcessedBy:     wireUUID(resp.ProcessedBy),
		ProcessedAt:     resp.ProcessedAt,
		RejectionReason: optionalString(resp.RejectionReason),
		Notes:           optionalString(resp.Notes),
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
