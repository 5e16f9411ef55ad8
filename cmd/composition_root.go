package cmd

import (
	"log/slog"
	"time"

	"courierdesk/internal/adapters/out/auth"
	"courierdesk/internal/adapters/out/postgres"
	"courierdesk/internal/adapters/out/rediscache"
	"courierdesk/internal/adapters/out/warehouse"
	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/pkg/httpclient"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *redis.Client
	logger      *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentClientUoWFactory = FuncShipmentClientUoWFactory(func() commands.ShipmentClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierStatusCommandHandler() commands.SetCourierStatusCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateSetClientStatusCommandHandler() commands.SetClientStatusCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetClientStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceClientUoWFactory = FuncInvoiceClientUoWFactory(func() commands.InvoiceClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateAddInvoiceLineCommandHandler() commands.AddInvoiceLineCommandHandler {
	return commands.NewAddInvoiceLineCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInvoiceLineCommandHandler() commands.UpdateInvoiceLineCommandHandler {
	return commands.NewUpdateInvoiceLineCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateRemoveInvoiceLineCommandHandler() commands.RemoveInvoiceLineCommandHandler {
	return commands.NewRemoveInvoiceLineCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateTransitionInvoiceCommandHandler() commands.TransitionInvoiceCommandHandler {
	return commands.NewTransitionInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() commands.MarkOverdueInvoicesCommandHandler {
	return commands.NewMarkOverdueInvoicesCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.uowFactory.Create().ShipmentRepository())
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewListCouriersQueryHandler(uow.CourierRepository(), uow.ShipmentRepository())
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewListClientsQueryHandler(uow.ClientRepository(), uow.ShipmentRepository(), uow.InvoiceRepository())
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.uowFactory.Create().InvoiceRepository())
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	var cache queries.TimelineCache
	if c.redisClient != nil {
		redisCache, err := rediscache.NewTimelineCache(c.redisClient, rediscache.DefaultTTL)
		if err == nil {
			cache = redisCache
		}
	}
	return queries.NewGetTimelineQueryHandler(c.uowFactory.Create().ShipmentRepository(), cache)
}

// CreateWarehouseClient builds the client for the warehouse receipts service.
func (c *CompositionRoot) CreateWarehouseClient(cfg Config) (*warehouse.Client, error) {
	return warehouse.NewClient(cfg.WarehouseBaseURL, cfg.WarehouseToken, httpclient.NewClient(10*time.Second, c.logger))
}

// CreateAuthClient builds the client for the authentication service.
func (c *CompositionRoot) CreateAuthClient(cfg Config) (*auth.Client, error) {
	return auth.NewClient(cfg.AuthBaseURL, httpclient.NewClient(10*time.Second, c.logger))
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncShipmentClientUoWFactory func() commands.ShipmentClientUoW

func (f FuncShipmentClientUoWFactory) Create() commands.ShipmentClientUoW {
	return f()
}

type FuncInvoiceClientUoWFactory func() commands.InvoiceClientUoW

func (f FuncInvoiceClientUoWFactory) Create() commands.InvoiceClientUoW {
	return f()
}
