package http

import (
	"net/http"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// respondReceipt reads the receipt back and writes it with the given status.
func (s *Server) respondReceipt(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetReceiptQueryByID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toWireReceipt(resp))
}

// listReceipts runs a receipt listing and writes the result.
func (s *Server) listReceipts(ctx echo.Context, query queries.GetReceiptsQuery) error {
	items, err := s.queries.GetReceipts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Receipt, len(items))
	for i, item := range items {
		response[i] = toWireReceipt(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GenerateReceiptNumber handles GET /receipts/generate-number.
func (s *Server) GenerateReceiptNumber(ctx echo.Context) error {
	cmd, err := commands.NewGenerateBusinessNumberCommand(kernel.PrefixReceipt)
	if err != nil {
		return s.writeError(ctx, err)
	}

	number, err := s.commands.GenerateBusinessNumber.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.GeneratedNumber{Number: number})
}

// CreateReceipt handles POST /receipts. The receipt number is taken from the
// body when present, otherwise a fresh one is drawn from the day's sequence.
func (s *Server) CreateReceipt(ctx echo.Context) error {
	var body servers.CreateReceiptJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	consolidationID, err := domainUUID(body.ConsolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	issuedBy, err := optionalDomainUUID(body.IssuedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	receiptNumber := deref(body.ReceiptNumber)
	if receiptNumber == "" {
		numberCmd, nerr := commands.NewGenerateBusinessNumberCommand(kernel.PrefixReceipt)
		if nerr != nil {
			return s.writeError(ctx, nerr)
		}
		receiptNumber, nerr = s.commands.GenerateBusinessNumber.Handle(ctx.Request().Context(), numberCmd)
		if nerr != nil {
			return s.writeError(ctx, nerr)
		}
	}

	var serviceFee, handlingFee, discount float64
	if body.Charges != nil {
		serviceFee = derefFloat(body.Charges.ServiceFee)
		handlingFee = derefFloat(body.Charges.HandlingFee)
		discount = derefFloat(body.Charges.Discount)
	}

	receiptID := kernel.NewUUID()
	cmd, err := commands.NewCreateReceiptCommand(
		receiptID,
		receiptNumber,
		consolidationID,
		body.TotalParcels,
		body.TotalWeight,
		serviceFee,
		handlingFee,
		discount,
		issuedBy,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.CreateReceipt.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondReceipt(ctx, http.StatusCreated, receiptID)
}

// ListReceipts handles GET /receipts.
func (s *Server) ListReceipts(ctx echo.Context, params servers.ListReceiptsParams) error {
	consolidationID, err := optionalDomainUUID(params.ConsolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	issuedBy, err := optionalDomainUUID(params.IssuedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetReceiptsQuery(consolidationID, issuedBy, params.StartDate, params.EndDate)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listReceipts(ctx, query)
}

// GetReceiptById handles GET /receipts/id/{id}.
func (s *Server) GetReceiptById(ctx echo.Context, id openapi_types.UUID) error {
	receiptID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondReceipt(ctx, http.StatusOK, receiptID)
}

// GetReceiptByNumber handles GET /receipts/number/{receiptNumber}.
func (s *Server) GetReceiptByNumber(ctx echo.Context, receiptNumber string) error {
	query, err := queries.NewGetReceiptQueryByNumber(receiptNumber)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.queries.GetReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWireReceipt(resp))
}

// ListReceiptsByConsolidation handles GET /receipts/consolidation/{consolidationId}.
func (s *Server) ListReceiptsByConsolidation(ctx echo.Context, consolidationId openapi_types.UUID) error {
	consolidationID, err := domainUUID(consolidationId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetReceiptsQuery(&consolidationID, nil, nil, nil)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.listReceipts(ctx, query)
}

// UpdateReceiptCharges handles PATCH /receipts/{id}/charges.
func (s *Server) UpdateReceiptCharges(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateReceiptChargesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	receiptID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateReceiptChargesCommand(
		receiptID,
		derefFloat(body.ServiceFee),
		derefFloat(body.HandlingFee),
		derefFloat(body.Discount),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateReceiptCharges.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondReceipt(ctx, http.StatusOK, receiptID)
}

// UpdateReceipt handles PUT /receipts/{id}.
func (s *Server) UpdateReceipt(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdateReceiptJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	receiptID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	issuedBy, err := optionalDomainUUID(body.IssuedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var charges *commands.ChargesInput
	if body.Charges != nil {
		charges = &commands.ChargesInput{
			ServiceFee:  derefFloat(body.Charges.ServiceFee),
			HandlingFee: derefFloat(body.Charges.HandlingFee),
			Discount:    derefFloat(body.Charges.Discount),
		}
	}

	cmd, err := commands.NewUpdateReceiptCommand(receiptID, body.TotalParcels, body.TotalWeight, charges, issuedBy)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.UpdateReceipt.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondReceipt(ctx, http.StatusOK, receiptID)
}

// DeleteReceipt handles DELETE /receipts/{id}.
func (s *Server) DeleteReceipt(ctx echo.Context, id openapi_types.UUID) error {
	receiptID, err := domainUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteReceiptCommand(receiptID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.commands.DeleteReceipt.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
