package cmd

import (
	httpin "consolidation/internal/adapters/in/http"
	"consolidation/internal/adapters/out/postgres"
	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/application/usecases/queries"
	"consolidation/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB             *gorm.DB
	uowFactory         postgres.GormUnitOfWorkFactory
	notificationClient ports.NotificationClient
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notificationClient ports.NotificationClient) CompositionRoot {
	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		notificationClient: notificationClient,
	}
}

func (c *CompositionRoot) consolidationUoWFactory() commands.ConsolidationUoWFactory {
	return FuncConsolidationUoWFactory(func() commands.ConsolidationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) receiptUoWFactory() commands.ReceiptUoWFactory {
	return FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sequenceUoWFactory() commands.SequenceUoWFactory {
	return FuncSequenceUoWFactory(func() commands.SequenceUoW {
		return c.uowFactory.Create()
	})
}

// CreateServerCommands assembles the command handler bundle for the HTTP server.
func (c *CompositionRoot) CreateServerCommands() httpin.Commands {
	return httpin.Commands{
		CreateConsolidation:       commands.NewCreateConsolidationCommandHandler(c.consolidationUoWFactory()),
		UpdateConsolidationStatus: commands.NewUpdateConsolidationStatusCommandHandler(c.consolidationUoWFactory()),
		AssignDriver:              commands.NewAssignDriverCommandHandler(c.deliveryUoWFactory()),
		AddParcel:                 commands.NewAddParcelCommandHandler(c.consolidationUoWFactory()),
		RemoveParcel:              commands.NewRemoveParcelCommandHandler(c.consolidationUoWFactory()),
		UpdateConsolidation:       commands.NewUpdateConsolidationCommandHandler(c.consolidationUoWFactory()),
		DeleteConsolidation:       commands.NewDeleteConsolidationCommandHandler(c.consolidationUoWFactory()),

		StartDelivery:        commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory()),
		EndDelivery:          commands.NewEndDeliveryCommandHandler(c.deliveryUoWFactory()),
		UpdateDriverLocation: commands.NewUpdateDriverLocationCommandHandler(c.deliveryUoWFactory()),

		CreateReceipt:        commands.NewCreateReceiptCommandHandler(c.receiptUoWFactory()),
		UpdateReceiptCharges: commands.NewUpdateReceiptChargesCommandHandler(c.receiptUoWFactory()),
		UpdateReceipt:        commands.NewUpdateReceiptCommandHandler(c.receiptUoWFactory()),
		DeleteReceipt:        commands.NewDeleteReceiptCommandHandler(c.receiptUoWFactory()),

		CreateRequest:       commands.NewCreateRequestCommandHandler(c.requestUoWFactory()),
		ApproveRequest:      commands.NewApproveRequestCommandHandler(c.requestUoWFactory()),
		RejectRequest:       commands.NewRejectRequestCommandHandler(c.requestUoWFactory()),
		ProcessRequest:      commands.NewProcessRequestCommandHandler(c.requestUoWFactory()),
		UpdateRequestStatus: commands.NewUpdateRequestStatusCommandHandler(c.requestUoWFactory()),
		UpdateRequest:       commands.NewUpdateRequestCommandHandler(c.requestUoWFactory()),
		DeleteRequest:       commands.NewDeleteRequestCommandHandler(c.requestUoWFactory()),

		GenerateBusinessNumber: commands.NewGenerateBusinessNumberCommandHandler(c.sequenceUoWFactory()),
	}
}

// CreateServerQueries assembles the query handler bundle for the HTTP server.
func (c *CompositionRoot) CreateServerQueries() httpin.Queries {
	return httpin.Queries{
		GetConsolidations:       queries.NewGetConsolidationsQueryHandler(c.gormDB),
		GetConsolidation:        queries.NewGetConsolidationQueryHandler(c.gormDB),
		GetDeliveries:           queries.NewGetDeliveriesQueryHandler(c.gormDB),
		GetDelivery:             queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetReceipts:             queries.NewGetReceiptsQueryHandler(c.gormDB),
		GetReceipt:              queries.NewGetReceiptQueryHandler(c.gormDB),
		GetRequests:             queries.NewGetRequestsQueryHandler(c.gormDB),
		GetRequest:              queries.NewGetRequestQueryHandler(c.gormDB),
		GetPendingRequestsCount: queries.NewGetPendingRequestsCountQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	return commands.NewRelayNotificationsCommandHandler(c.outboxUoWFactory(), c.notificationClient)
}

type FuncConsolidationUoWFactory func() commands.ConsolidationUoW

func (f FuncConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncSequenceUoWFactory func() commands.SequenceUoW

func (f FuncSequenceUoWFactory) Create() commands.SequenceUoW {
	return f()
}
