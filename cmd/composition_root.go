package cmd

import (
	"log/slog"
	"time"

	"settlement/internal/adapters/out/notify"
	"settlement/internal/adapters/out/postgres"
	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/ports"
	"settlement/internal/jobs"
	"settlement/internal/tracking"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// one unit of work factory, one notifier, and one tracking manager.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	tracking   *tracking.Manager
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
		logger:     logger,
	}

	recorder := root.CreateRecordLocationCommandHandler()
	root.tracking = tracking.NewManager(
		config.LocationMinInterval,
		func() time.Time { return time.Now().UTC() },
		recorder,
	)

	return root
}

// TrackingManager exposes the courier session registry for the HTTP layer.
func (c *CompositionRoot) TrackingManager() *tracking.Manager {
	return c.tracking
}

func (c *CompositionRoot) CreateOpenOrderCommandHandler() commands.OpenOrderCommandHandler {
	return commands.NewOpenOrderCommandHandler(
		c.settlementUoWFactory(),
		c.notifier,
		c.config.PlatformFeeBasisPoints,
	)
}

func (c *CompositionRoot) CreateMarkReadyForPickupCommandHandler() commands.MarkReadyForPickupCommandHandler {
	return commands.NewMarkReadyForPickupCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.orderUoWFactory(), c.notifier, c.tracking)
}

func (c *CompositionRoot) CreateConfirmDropoffCommandHandler() commands.ConfirmDropoffCommandHandler {
	return commands.NewConfirmDropoffCommandHandler(c.orderUoWFactory(), c.notifier, c.tracking)
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	return commands.NewConfirmReceiptCommandHandler(c.settlementUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	return commands.NewOpenDisputeCommandHandler(
		c.orderUoWFactory(),
		c.notifier,
		c.tracking,
		c.config.ArbiterUUID(),
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.settlementUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(
		c.settlementUoWFactory(),
		c.notifier,
		c.tracking,
		c.config.ArbiterUUID(),
	)
}

func (c *CompositionRoot) CreateRecordLocationCommandHandler() commands.RecordLocationCommandHandler {
	return commands.NewRecordLocationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestPayoutCommandHandler() commands.RequestPayoutCommandHandler {
	return commands.NewRequestPayoutCommandHandler(c.payoutUoWFactory())
}

func (c *CompositionRoot) CreateApprovePayoutCommandHandler() commands.ApprovePayoutCommandHandler {
	return commands.NewApprovePayoutCommandHandler(c.payoutUoWFactory(), c.notifier, c.config.ArbiterUUID())
}

func (c *CompositionRoot) CreateRejectPayoutCommandHandler() commands.RejectPayoutCommandHandler {
	return commands.NewRejectPayoutCommandHandler(c.payoutUoWFactory(), c.notifier, c.config.ArbiterUUID())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingPayoutsQueryHandler() queries.GetPendingPayoutsQueryHandler {
	return queries.NewGetPendingPayoutsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleTransitOrdersQueryHandler() queries.GetStaleTransitOrdersQueryHandler {
	return queries.NewGetStaleTransitOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStaleTransitOrdersQueryHandler(),
		c.notifier,
		c.config.ArbiterUUID(),
		c.config.StaleTransitThreshold,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) payoutUoWFactory() commands.PayoutUoWFactory {
	return FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}
