// Package http provides the inbound REST adapter. Handlers translate JSON
// requests into commands and queries, and domain errors into status codes;
// no business rules live here.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	approveOrderHandler         commands.ApproveOrderCommandHandler
	allocateOrderHandler        commands.AllocateOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	generatePickingTaskHandler  commands.GeneratePickingTaskCommandHandler
	assignPickerHandler         commands.AssignPickerCommandHandler
	recordPickHandler           commands.RecordPickCommandHandler
	completePickingHandler      commands.CompletePickingCommandHandler
	createPackingTaskHandler    commands.CreatePackingTaskCommandHandler
	openPackageHandler          commands.OpenPackageCommandHandler
	addPackageItemHandler       commands.AddPackageItemCommandHandler
	finalizePackageHandler      commands.FinalizePackageCommandHandler
	completePackingHandler      commands.CompletePackingCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	assignTrackingHandler       commands.AssignTrackingCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	orderSummaryHandler     queries.GetOrderSummaryQueryHandler
	orderStatsHandler       queries.GetOrderStatsQueryHandler
	openPickingTasksHandler queries.GetOpenPickingTasksQueryHandler
	packingSummaryHandler   queries.GetPackingSummaryQueryHandler
	shipmentManifestHandler queries.GetShipmentManifestQueryHandler
	auditTrailHandler       queries.GetAuditTrailQueryHandler
}

// Handlers bundles everything the server needs. A struct rather than a
// twenty-argument constructor.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	ApproveOrder         commands.ApproveOrderCommandHandler
	AllocateOrder        commands.AllocateOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	GeneratePickingTask  commands.GeneratePickingTaskCommandHandler
	AssignPicker         commands.AssignPickerCommandHandler
	RecordPick           commands.RecordPickCommandHandler
	CompletePicking      commands.CompletePickingCommandHandler
	CreatePackingTask    commands.CreatePackingTaskCommandHandler
	OpenPackage          commands.OpenPackageCommandHandler
	AddPackageItem       commands.AddPackageItemCommandHandler
	FinalizePackage      commands.FinalizePackageCommandHandler
	CompletePacking      commands.CompletePackingCommandHandler
	CreateShipment       commands.CreateShipmentCommandHandler
	AssignTracking       commands.AssignTrackingCommandHandler
	UpdateShipmentStatus commands.UpdateShipmentStatusCommandHandler

	OrderSummary     queries.GetOrderSummaryQueryHandler
	OrderStats       queries.GetOrderStatsQueryHandler
	OpenPickingTasks queries.GetOpenPickingTasksQueryHandler
	PackingSummary   queries.GetPackingSummaryQueryHandler
	ShipmentManifest queries.GetShipmentManifestQueryHandler
	AuditTrail       queries.GetAuditTrailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:          handlers.CreateOrder,
		approveOrderHandler:         handlers.ApproveOrder,
		allocateOrderHandler:        handlers.AllocateOrder,
		cancelOrderHandler:          handlers.CancelOrder,
		generatePickingTaskHandler:  handlers.GeneratePickingTask,
		assignPickerHandler:         handlers.AssignPicker,
		recordPickHandler:           handlers.RecordPick,
		completePickingHandler:      handlers.CompletePicking,
		createPackingTaskHandler:    handlers.CreatePackingTask,
		openPackageHandler:          handlers.OpenPackage,
		addPackageItemHandler:       handlers.AddPackageItem,
		finalizePackageHandler:      handlers.FinalizePackage,
		completePackingHandler:      handlers.CompletePacking,
		createShipmentHandler:       handlers.CreateShipment,
		assignTrackingHandler:       handlers.AssignTracking,
		updateShipmentStatusHandler: handlers.UpdateShipmentStatus,
		orderSummaryHandler:         handlers.OrderSummary,
		orderStatsHandler:           handlers.OrderStats,
		openPickingTasksHandler:     handlers.OpenPickingTasks,
		packingSummaryHandler:       handlers.PackingSummary,
		shipmentManifestHandler:     handlers.ShipmentManifest,
		auditTrailHandler:           handlers.AuditTrail,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/stats", s.GetOrderStats)
	api.GET("/orders/:orderId", s.GetOrderSummary)
	api.GET("/orders/:orderId/audit", s.GetAuditTrail)
	api.POST("/orders/:orderId/approve", s.ApproveOrder)
	api.POST("/orders/:orderId/allocate", s.AllocateOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/picking-task", s.GeneratePickingTask)
	api.POST("/orders/:orderId/packing-task", s.CreatePackingTask)
	api.GET("/orders/:orderId/packing-summary", s.GetPackingSummary)
	api.POST("/orders/:orderId/shipment", s.CreateShipment)
	api.GET("/orders/:orderId/shipment", s.GetShipmentManifest)

	api.GET("/picking-tasks/open", s.GetOpenPickingTasks)
	api.POST("/picking-tasks/:taskId/assign", s.AssignPicker)
	api.POST("/picking-tasks/:taskId/picks", s.RecordPick)
	api.POST("/picking-tasks/:taskId/complete", s.CompletePicking)

	api.POST("/packing-tasks/:taskId/packages", s.OpenPackage)
	api.POST("/packing-tasks/:taskId/packages/:packageId/items", s.AddPackageItem)
	api.POST("/packing-tasks/:taskId/packages/:packageId/finalize", s.FinalizePackage)
	api.POST("/packing-tasks/:taskId/complete", s.CompletePacking)

	api.POST("/shipments/:shipmentId/tracking", s.AssignTracking)
	api.POST("/shipments/:shipmentId/status", s.UpdateShipmentStatus)
}

// actor identifies who made the request, for the audit trail. Requests
// without the header are attributed to the system account.
func actor(ctx echo.Context) string {
	if a := ctx.Request().Header.Get("X-Actor"); a != "" {
		return a
	}
	return audit.SystemActor
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority, err := order.PriorityFromString(req.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	warehouseID, err := kernel.UUIDFromBytes(req.WarehouseID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductID[:])
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		items = append(items, commands.OrderItemInput{
			ItemID:     kernel.NewUUID(),
			ProductID:  productID,
			SKU:        line.SKU,
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			UnitWeight: line.UnitWeight,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, warehouseID, priority, items, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.Bytes()})
}

// GetOrderSummary handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.orderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderSummaryItemResponse, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, OrderSummaryItemResponse{
			ID:                item.ID.Bytes(),
			SKU:               item.SKU,
			Name:              item.Name,
			QuantityOrdered:   item.QuantityOrdered,
			QuantityAllocated: item.QuantityAllocated,
			QuantityPicked:    item.QuantityPicked,
			QuantityPacked:    item.QuantityPacked,
			UnitPrice:         item.UnitPrice,
			LineTotal:         item.LineTotal,
		})
	}

	return ctx.JSON(http.StatusOK, OrderSummaryResponse{
		ID:           summary.ID.Bytes(),
		Number:       summary.Number,
		WarehouseID:  summary.WarehouseID.Bytes(),
		Priority:     summary.Priority,
		Status:       summary.Status,
		CancelReason: summary.CancelReason,
		TotalAmount:  summary.TotalAmount,
		Items:        items,
		CreatedAt:    summary.CreatedAt,
		UpdatedAt:    summary.UpdatedAt,
	})
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.orderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderStatsResponse, 0, len(stats))
	for _, bucket := range stats {
		response = append(response, OrderStatsResponse(bucket))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/orders/{orderId}/audit.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetAuditTrailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.auditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, AuditEntryResponse{
			EntityType: entry.EntityType,
			Action:     entry.Action,
			Actor:      entry.Actor,
			OldValues:  entry.OldValues,
			NewValues:  entry.NewValues,
			Notes:      entry.Notes,
			OccurredAt: entry.OccurredAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AllocateOrder handles POST /api/v1/orders/{orderId}/allocate.
func (s *Server) AllocateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAllocateOrderCommand(orderID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.allocateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GeneratePickingTask handles POST /api/v1/orders/{orderId}/picking-task.
func (s *Server) GeneratePickingTask(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewGeneratePickingTaskCommand(taskID, orderID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.generatePickingTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: taskID.Bytes()})
}

// GetOpenPickingTasks handles GET /api/v1/picking-tasks/open.
func (s *Server) GetOpenPickingTasks(ctx echo.Context) error {
	tasks, err := s.openPickingTasksHandler.Handle(ctx.Request().Context(),
		queries.NewGetOpenPickingTasksQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenPickingTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, OpenPickingTaskResponse{
			ID:          task.ID.Bytes(),
			Number:      task.Number,
			OrderNumber: task.OrderNumber,
			Status:      task.Status,
			Picker:      task.Picker,
			LineCount:   task.LineCount,
			CreatedAt:   task.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignPicker handles POST /api/v1/picking-tasks/{taskId}/assign.
func (s *Server) AssignPicker(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req AssignPickerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignPickerCommand(taskID, req.Picker, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignPickerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RecordPick handles POST /api/v1/picking-tasks/{taskId}/picks.
func (s *Server) RecordPick(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req RecordPickRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(req.ItemID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordPickCommand(taskID, itemID, req.Quantity, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordPickHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompletePicking handles POST /api/v1/picking-tasks/{taskId}/complete.
func (s *Server) CompletePicking(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewCompletePickingCommand(taskID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completePickingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreatePackingTask handles POST /api/v1/orders/{orderId}/packing-task.
func (s *Server) CreatePackingTask(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackingTaskCommand(taskID, orderID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createPackingTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: taskID.Bytes()})
}

// OpenPackage handles POST /api/v1/packing-tasks/{taskId}/packages.
func (s *Server) OpenPackage(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req OpenPackageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packageType, err := packing.PackageTypeFromString(req.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	dimensions, err := packing.NewDimensions(req.Length, req.Width, req.Height)
	if err != nil {
		return respondError(ctx, err)
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewOpenPackageCommand(taskID, packageID, packageType, dimensions, req.MaxWeight, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.openPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: packageID.Bytes()})
}

// AddPackageItem handles POST /api/v1/packing-tasks/{taskId}/packages/{packageId}/items.
func (s *Server) AddPackageItem(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}
	packageID, err := pathID(ctx, "packageId")
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	var req AddPackageItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderItemID, err := kernel.UUIDFromBytes(req.OrderItemID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddPackageItemCommand(taskID, packageID, orderItemID, req.Quantity, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addPackageItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// FinalizePackage handles POST /api/v1/packing-tasks/{taskId}/packages/{packageId}/finalize.
func (s *Server) FinalizePackage(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}
	packageID, err := pathID(ctx, "packageId")
	if err != nil {
		return badRequest(ctx, "Invalid package id")
	}

	cmd, err := commands.NewFinalizePackageCommand(taskID, packageID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.finalizePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompletePacking handles POST /api/v1/packing-tasks/{taskId}/complete.
func (s *Server) CompletePacking(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewCompletePackingCommand(taskID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completePackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPackingSummary handles GET /api/v1/orders/{orderId}/packing-summary.
func (s *Server) GetPackingSummary(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetPackingSummaryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.packingSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	packages := make([]PackingSummaryPackageResponse, 0, len(summary.Packages))
	for _, pkg := range summary.Packages {
		packages = append(packages, PackingSummaryPackageResponse{
			ID:        pkg.ID.Bytes(),
			Number:    pkg.Number,
			Type:      pkg.Type,
			Status:    pkg.Status,
			Length:    pkg.Length,
			Width:     pkg.Width,
			Height:    pkg.Height,
			MaxWeight: pkg.MaxWeight,
			Weight:    pkg.Weight,
			ItemCount: pkg.ItemCount,
		})
	}

	return ctx.JSON(http.StatusOK, PackingSummaryResponse{
		ID:          summary.ID.Bytes(),
		Number:      summary.Number,
		OrderNumber: summary.OrderNumber,
		Status:      summary.Status,
		Packages:    packages,
		CreatedAt:   summary.CreatedAt,
	})
}

// CreateShipment handles POST /api/v1/orders/{orderId}/shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CreateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := shipment.NewAddress(req.Destination.Line1,
		req.Destination.Line2, req.Destination.City, req.Destination.Region,
		req.Destination.PostalCode, req.Destination.Country)
	if err != nil {
		return respondError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, req.Carrier, destination, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.Bytes()})
}

// GetShipmentManifest handles GET /api/v1/orders/{orderId}/shipment.
func (s *Server) GetShipmentManifest(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetShipmentManifestQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	manifest, err := s.shipmentManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	packages := make([]ManifestPackageResponse, 0, len(manifest.Packages))
	for _, pkg := range manifest.Packages {
		packages = append(packages, ManifestPackageResponse(pkg))
	}

	return ctx.JSON(http.StatusOK, ShipmentManifestResponse{
		ID:             manifest.ID.Bytes(),
		Number:         manifest.Number,
		OrderNumber:    manifest.OrderNumber,
		Carrier:        manifest.Carrier,
		TrackingNumber: manifest.TrackingNumber,
		Status:         manifest.Status,
		TotalWeight:    manifest.TotalWeight,
		Packages:       packages,
		CreatedAt:      manifest.CreatedAt,
		ShippedAt:      manifest.ShippedAt,
		DeliveredAt:    manifest.DeliveredAt,
	})
}

// AssignTracking handles POST /api/v1/shipments/{shipmentId}/tracking.
func (s *Server) AssignTracking(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req AssignTrackingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignTrackingCommand(shipmentID, req.TrackingNumber, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentStatus handles POST /api/v1/shipments/{shipmentId}/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req UpdateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, status, req.Notes, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
