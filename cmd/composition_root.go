package cmd

import (
	"log/slog"
	"time"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/inventory"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	inventory  ports.InventoryAdapter
	planner    services.AllocationPlanner
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		inventory:  createInventoryAdapter(config),
		planner:    services.NewAllocationPlanner(),
		logger:     logger,
	}
}

// createInventoryAdapter selects the inventory backend. Redis is the
// production choice; the mock keeps local development free of external
// services.
func createInventoryAdapter(config Config) ports.InventoryAdapter {
	if config.InventoryBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		return inventory.NewRedisAdapter(client)
	}
	return inventory.NewMockAdapter()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocateOrderCommandHandler() commands.AllocateOrderCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateOrderCommandHandler(f, c.inventory, c.planner)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.inventory)
}

func (c *CompositionRoot) CreateGeneratePickingTaskCommandHandler() commands.GeneratePickingTaskCommandHandler {
	var f commands.PickingUoWFactory = FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGeneratePickingTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPickerCommandHandler() commands.AssignPickerCommandHandler {
	var f commands.PickingUoWFactory = FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPickerCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPickCommandHandler() commands.RecordPickCommandHandler {
	var f commands.PickingUoWFactory = FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPickCommandHandler(f)
}

func (c *CompositionRoot) CreateCompletePickingCommandHandler() commands.CompletePickingCommandHandler {
	var f commands.PickingUoWFactory = FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePackingTaskCommandHandler() commands.CreatePackingTaskCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackingTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenPackageCommandHandler() commands.OpenPackageCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPackageItemCommandHandler() commands.AddPackageItemCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPackageItemCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizePackageCommandHandler() commands.FinalizePackageCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateCompletePackingCommandHandler() commands.CompletePackingCommandHandler {
	var f commands.PackingUoWFactory = FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePackingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShippingUoWFactory = FuncShippingUoWFactory(func() commands.ShippingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTrackingCommandHandler() commands.AssignTrackingCommandHandler {
	var f commands.ShippingUoWFactory = FuncShippingUoWFactory(func() commands.ShippingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShippingUoWFactory = FuncShippingUoWFactory(func() commands.ShippingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenPickingTasksQueryHandler() queries.GetOpenPickingTasksQueryHandler {
	return queries.NewGetOpenPickingTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackingSummaryQueryHandler() queries.GetPackingSummaryQueryHandler {
	return queries.NewGetPackingSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentManifestQueryHandler() queries.GetShipmentManifestQueryHandler {
	return queries.NewGetShipmentManifestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(staleAfter time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderStatsQueryHandler(),
		c.CreateGetOpenPickingTasksQueryHandler(),
		staleAfter,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ApproveOrder:         c.CreateApproveOrderCommandHandler(),
		AllocateOrder:        c.CreateAllocateOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		GeneratePickingTask:  c.CreateGeneratePickingTaskCommandHandler(),
		AssignPicker:         c.CreateAssignPickerCommandHandler(),
		RecordPick:           c.CreateRecordPickCommandHandler(),
		CompletePicking:      c.CreateCompletePickingCommandHandler(),
		CreatePackingTask:    c.CreateCreatePackingTaskCommandHandler(),
		OpenPackage:          c.CreateOpenPackageCommandHandler(),
		AddPackageItem:       c.CreateAddPackageItemCommandHandler(),
		FinalizePackage:      c.CreateFinalizePackageCommandHandler(),
		CompletePacking:      c.CreateCompletePackingCommandHandler(),
		CreateShipment:       c.CreateCreateShipmentCommandHandler(),
		AssignTracking:       c.CreateAssignTrackingCommandHandler(),
		UpdateShipmentStatus: c.CreateUpdateShipmentStatusCommandHandler(),
		OrderSummary:         c.CreateGetOrderSummaryQueryHandler(),
		OrderStats:           c.CreateGetOrderStatsQueryHandler(),
		OpenPickingTasks:     c.CreateGetOpenPickingTasksQueryHandler(),
		PackingSummary:       c.CreateGetPackingSummaryQueryHandler(),
		ShipmentManifest:     c.CreateGetShipmentManifestQueryHandler(),
		AuditTrail:           c.CreateGetAuditTrailQueryHandler(),
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncPickingUoWFactory func() commands.PickingUoW

func (f FuncPickingUoWFactory) Create() commands.PickingUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncShippingUoWFactory func() commands.ShippingUoW

func (f FuncShippingUoWFactory) Create() commands.ShippingUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}
