package http

import (
	"net/http"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/request"
	"consolidation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// respondRequest reads the request back and writes it with the given status.
func (s *Server) respondRequest(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetRequestQueryByID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toWireRequest(resp))
}

// listRequests runs a request listing and writes the result.
func (s *Server) listRequests(ctx echo.Context, query queries.GetRequestsQuery) error {
	items, err := s.queries.GetRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Request, len(items))
	for i, item := range items {
		response[i] = toWireRequest(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GenerateRequestNumber handles GET /requests/generate-number.
func (s *Server) GenerateRequestNumber(ctx echo.Context) error {
	cmd, err := commands.NewGenerateBusinessNumberCommand(kernel.PrefixRequest)
	if err != nil {
		return s.writeError(ctx, err)
	}

	number, err := s.commands.GenerateBusinessNumber.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.GeneratedNumber{Number: number})
}

// GetPendingRequestsCount handles GET /requests/pending-count.
func (s *Server) GetPendingRequestsCount(ctx echo.Context) error {
	resp, err := s.queries.GetPendingRequestsCount.Handle(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.PendingCount{Count: resp.Count})
}

// CreateRequest handles POST /requests. The request number is taken from the
// body when present, otherwise a fresh one is drawn from the day's sequence.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body servers.CreateRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	customerID, err := domainUUID(body.CustomerId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	requestNumber := deref(body.RequestNumber)
	if requestNumber == "" {
		numberCmd, nerr := commands.NewGenerateBusinessNumberCommand(kernel.PrefixRequest)
		if nerr != nil {
			return s.writeError(ctx, nerr)
		}
		requestNumber, nerr = s.commands.GenerateBusinessNumber.Handle(ctx.Request().Context(), numberCmd)
		if nerr != nil {
			return s.writeError(ctx, nerr)
		}
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(requestID, requestNumber, customerID, deref(body.Notes))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.CreateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondRequest(ctx, http.StatusCreated, requestID)
}

// ListRequests handles GET /requests.
func (s *Server) ListRequests(ctx echo.Context, params servers.ListRequestsParams) error {
	customerID, err := optionalDomainUUID(params.CustomerId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	processedBy, err := optionalDomainUUID(params.ProcessedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}
	consolidationID, err := optionalDomainUUID(params.ConsolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetRequestsQuery(
		request.Status(deref(params.Status)),
		customerID,
		processedBy,
		consolidationID,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listRequests(ctx, query)
}

// GetRequestById handles GET /requests/id/{id}.
func (s *Server) GetRequestById(ctx echo.Context, id openapi_types.UUID) error {
	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondRequest(ctx, http.StatusOK, requestID)
}

// GetRequestByNumber handles GET /requests/number/{requestNumber}.
func (s *Server) GetRequestByNumber(ctx echo.Context, requestNumber string) error {
	query, err := queries.NewGetRequestQueryByNumber(requestNumber)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWireRequest(resp))
}

// ListRequestsByCustomer handles GET /requests/customer/{customerId}.
func (s *Server) ListRequestsByCustomer(ctx echo.Context, customerId openapi_types.UUID) error {
	customerID, err := domainUUID(customerId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetRequestsQuery("", &customerID, nil, nil)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listRequests(ctx, query)
}

// UpdateRequestStatus handles PATCH /requests/{id}/status.
func (s *Server) UpdateRequestStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateRequestStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	processedBy, err := domainUUID(body.ProcessedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateRequestStatusCommand(requestID, request.Status(body.Status), processedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateRequestStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondRequest(ctx, http.StatusOK, requestID)
}

// ApproveRequest handles POST /requests/{id}/approve.
func (s *Server) ApproveRequest(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.ApproveRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	processedBy, err := domainUUID(body.ProcessedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}
	consolidationID, err := optionalDomainUUID(body.ConsolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewApproveRequestCommand(requestID, processedBy, consolidationID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.ApproveRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondRequest(ctx, http.StatusOK, requestID)
}

// RejectRequest handles POST /requests/{id}/reject.
func (s *Server) RejectRequest(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.RejectRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	processedBy, err := domainUUID(body.ProcessedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRejectRequestCommand(requestID, processedBy, body.Reason)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.RejectRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondRequest(ctx, http.StatusOK, requestID)
}

// ProcessRequest handles POST /requests/{id}/process.
func (s *Server) ProcessRequest(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.ProcessRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	processedBy, err := domainUUID(body.ProcessedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}
	consolidationID, err := domainUUID(body.ConsolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewProcessRequestCommand(requestID, processedBy, consolidationID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.ProcessRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondRequest(ctx, http.StatusOK, requestID)
}

// UpdateRequest handles PUT /requests/{id}.
func (s *Server) UpdateRequest(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateRequestCommand(requestID, deref(body.Notes))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondRequest(ctx, http.StatusOK, requestID)
}

// DeleteRequest handles DELETE /requests/{id}.
func (s *Server) DeleteRequest(ctx echo.Context, id openapi_types.UUID) error {
	requestID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteRequestCommand(requestID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.DeleteRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
