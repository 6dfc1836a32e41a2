package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the uniform error body for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	WarehouseID uuid.UUID                `json:"warehouseId"`
	Priority    string                   `json:"priority"`
	Items       []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one line of a new order.
type CreateOrderItemRequest struct {
	ProductID  uuid.UUID       `json:"productId"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	UnitWeight decimal.Decimal `json:"unitWeight"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/{orderId}/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// AssignPickerRequest is the body of POST /api/v1/picking-tasks/{taskId}/assign.
type AssignPickerRequest struct {
	Picker string `json:"picker"`
}

// RecordPickRequest is the body of POST /api/v1/picking-tasks/{taskId}/picks.
type RecordPickRequest struct {
	ItemID   uuid.UUID       `json:"itemId"`
	Quantity decimal.Decimal `json:"quantity"`
}

// OpenPackageRequest is the body of POST /api/v1/packing-tasks/{taskId}/packages.
type OpenPackageRequest struct {
	Type      string          `json:"type"`
	Length    decimal.Decimal `json:"length"`
	Width     decimal.Decimal `json:"width"`
	Height    decimal.Decimal `json:"height"`
	MaxWeight decimal.Decimal `json:"maxWeight"`
}

// AddPackageItemRequest is the body of POST .../packages/{packageId}/items.
type AddPackageItemRequest struct {
	OrderItemID uuid.UUID       `json:"orderItemId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// CreateShipmentRequest is the body of POST /api/v1/orders/{orderId}/shipment.
type CreateShipmentRequest struct {
	Carrier     string         `json:"carrier"`
	Destination AddressRequest `json:"destination"`
}

// AddressRequest is the shipment destination.
type AddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// AssignTrackingRequest is the body of POST /api/v1/shipments/{shipmentId}/tracking.
type AssignTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// UpdateShipmentStatusRequest is the body of POST /api/v1/shipments/{shipmentId}/status.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// OrderSummaryResponse is the body of GET /api/v1/orders/{orderId}.
type OrderSummaryResponse struct {
	ID           uuid.UUID                  `json:"id"`
	Number       string                     `json:"number"`
	WarehouseID  uuid.UUID                  `json:"warehouseId"`
	Priority     string                     `json:"priority"`
	Status       string                     `json:"status"`
	CancelReason string                     `json:"cancelReason,omitempty"`
	TotalAmount  decimal.Decimal            `json:"totalAmount"`
	Items        []OrderSummaryItemResponse `json:"items"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
}

// OrderSummaryItemResponse is one order line in the summary.
type OrderSummaryItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	QuantityOrdered   decimal.Decimal `json:"quantityOrdered"`
	QuantityAllocated decimal.Decimal `json:"quantityAllocated"`
	QuantityPicked    decimal.Decimal `json:"quantityPicked"`
	QuantityPacked    decimal.Decimal `json:"quantityPacked"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	LineTotal         decimal.Decimal `json:"lineTotal"`
}

// OrderStatsResponse is one status bucket in GET /api/v1/orders/stats.
type OrderStatsResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// OpenPickingTaskResponse is one task in GET /api/v1/picking-tasks/open.
type OpenPickingTaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Picker      string    `json:"picker,omitempty"`
	LineCount   int       `json:"lineCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PackingSummaryResponse is the body of GET /api/v1/orders/{orderId}/packing-summary.
type PackingSummaryResponse struct {
	ID          uuid.UUID                       `json:"id"`
	Number      string                          `json:"number"`
	OrderNumber string                          `json:"orderNumber"`
	Status      string                          `json:"status"`
	Packages    []PackingSummaryPackageResponse `json:"packages"`
	CreatedAt   time.Time                       `json:"createdAt"`
}

// PackingSummaryPackageResponse is one container in the packing summary.
type PackingSummaryPackageResponse struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"number"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Length    decimal.Decimal `json:"length"`
	Width     decimal.Decimal `json:"width"`
	Height    decimal.Decimal `json:"height"`
	MaxWeight decimal.Decimal `json:"maxWeight"`
	Weight    decimal.Decimal `json:"weight"`
	ItemCount int             `json:"itemCount"`
}

// ShipmentManifestResponse is the body of GET /api/v1/orders/{orderId}/shipment.
type ShipmentManifestResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Number         string                    `json:"number"`
	OrderNumber    string                    `json:"orderNumber"`
	Carrier        string                    `json:"carrier"`
	TrackingNumber string                    `json:"trackingNumber,omitempty"`
	Status         string                    `json:"status"`
	TotalWeight    decimal.Decimal           `json:"totalWeight"`
	Packages       []ManifestPackageResponse `json:"packages"`
	CreatedAt      time.Time                 `json:"createdAt"`
	ShippedAt      *time.Time                `json:"shippedAt,omitempty"`
	DeliveredAt    *time.Time                `json:"deliveredAt,omitempty"`
}

// ManifestPackageResponse is one container on the manifest.
type ManifestPackageResponse struct {
	PackageNumber string          `json:"packageNumber"`
	Weight        decimal.Decimal `json:"weight"`
	Length        decimal.Decimal `json:"length"`
	Width         decimal.Decimal `json:"width"`
	Height        decimal.Decimal `json:"height"`
}

// AuditEntryResponse is one recorded change in GET /api/v1/orders/{orderId}/audit.
type AuditEntryResponse struct {
	EntityType string         `json:"entityType"`
	Action     string         `json:"action"`
	Actor      string         `json:"actor"`
	OldValues  map[string]any `json:"oldValues,omitempty"`
	NewValues  map[string]any `json:"newValues,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
