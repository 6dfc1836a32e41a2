package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentManifestQueryHandler reads a shipment and its package snapshot
// with raw SQL.
type GetShipmentManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentManifestQueryHandler creates a handler for manifest queries.
func NewGetShipmentManifestQueryHandler(db *gorm.DB) GetShipmentManifestQueryHandler {
	return GetShipmentManifestQueryHandler{db: db}
}

// Handle executes the query. Returns ErrObjectNotFound when the order has no
// shipment yet.
func (h GetShipmentManifestQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentManifestQuery,
) (GetShipmentManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentManifestQueryResponse{}, err
	}

	var response GetShipmentManifestQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.number,
			o.number,
			s.carrier,
			s.tracking_number,
			s.status,
			s.created_at,
			s.shipped_at,
			s.delivered_at
		FROM shipments s
		JOIN orders o ON o.id = s.order_id
		WHERE s.order_id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id     uuid.UUID
		status int
	)
	err := row.Scan(&id, &response.Number, &response.OrderNumber,
		&response.Carrier, &response.TrackingNumber, &status,
		&response.CreatedAt, &response.ShippedAt, &response.DeliveredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentManifestQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetShipmentManifestQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentManifestQueryResponse{}, err
	}
	response.Status = shipment.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			package_number,
			weight,
			length,
			width,
			height
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY package_number
	`, id).Rows()
	if err != nil {
		return GetShipmentManifestQueryResponse{}, err
	}
	defer rows.Close()

	response.Packages = make([]ManifestPackage, 0)
	response.TotalWeight = decimal.Zero
	for rows.Next() {
		var pkg ManifestPackage
		if err = rows.Scan(&pkg.PackageNumber, &pkg.Weight,
			&pkg.Length, &pkg.Width, &pkg.Height); err != nil {
			return GetShipmentManifestQueryResponse{}, err
		}
		response.TotalWeight = response.TotalWeight.Add(pkg.Weight)
		response.Packages = append(response.Packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return GetShipmentManifestQueryResponse{}, err
	}

	return response, nil
}
