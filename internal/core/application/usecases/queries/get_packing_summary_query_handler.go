package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackingSummaryQueryHandler reads a packing task and its packages with
// raw SQL. Package weight is the sum of item weights; the container tare is
// not included.
type GetPackingSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetPackingSummaryQueryHandler creates a handler for packing summaries.
func NewGetPackingSummaryQueryHandler(db *gorm.DB) GetPackingSummaryQueryHandler {
	return GetPackingSummaryQueryHandler{db: db}
}

// Handle executes the query. Returns ErrObjectNotFound when the order has
// no packing task yet.
func (h GetPackingSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetPackingSummaryQuery,
) (GetPackingSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackingSummaryQueryResponse{}, err
	}

	var response GetPackingSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			o.number,
			t.status,
			t.created_at
		FROM packing_tasks t
		JOIN orders o ON o.id = t.order_id
		WHERE t.order_id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id     uuid.UUID
		status int
	)
	err := row.Scan(&id, &response.Number, &response.OrderNumber, &status, &response.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPackingSummaryQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetPackingSummaryQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPackingSummaryQueryResponse{}, err
	}
	response.Status = packing.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.number,
			p.type,
			p.status,
			p.length,
			p.width,
			p.height,
			p.max_weight,
			COALESCE(SUM(i.quantity * i.unit_weight), 0),
			COUNT(i.id)
		FROM packages p
		LEFT JOIN package_items i ON i.package_id = p.id
		WHERE p.task_id = ?
		GROUP BY p.id, p.number, p.type, p.status, p.length, p.width, p.height, p.max_weight
		ORDER BY p.number
	`, id).Rows()
	if err != nil {
		return GetPackingSummaryQueryResponse{}, err
	}
	defer rows.Close()

	response.Packages = make([]PackingSummaryPackage, 0)
	for rows.Next() {
		var (
			pkg           PackingSummaryPackage
			packageID     uuid.UUID
			packageType   int
			packageStatus int
		)
		if err = rows.Scan(&packageID, &pkg.Number, &packageType, &packageStatus,
			&pkg.Length, &pkg.Width, &pkg.Height,
			&pkg.MaxWeight, &pkg.Weight, &pkg.ItemCount); err != nil {
			return GetPackingSummaryQueryResponse{}, err
		}
		pkg.ID, err = kernel.UUIDFromBytes(packageID[:])
		if err != nil {
			return GetPackingSummaryQueryResponse{}, err
		}
		pkg.Type = packing.PackageType(packageType).String()
		pkg.Status = packing.PackageStatus(packageStatus).String()
		response.Packages = append(response.Packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return GetPackingSummaryQueryResponse{}, err
	}

	return response, nil
}
