package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderSummaryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderSummaryQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetOrderSummaryQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderSummaryQueryIsNotConstructed)
}

func TestNewGetOrderStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderStatsQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrderStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatsQueryIsNotConstructed)
}

func TestNewGetOpenPickingTasksQuery_Valid(t *testing.T) {
	query := queries.NewGetOpenPickingTasksQuery()
	require.NoError(t, query.Validate())
}

func TestGetOpenPickingTasksQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOpenPickingTasksQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOpenPickingTasksQueryIsNotConstructed)
}

func TestNewGetPackingSummaryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPackingSummaryQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetPackingSummaryQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetPackingSummaryQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPackingSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackingSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackingSummaryQueryIsNotConstructed)
}

func TestNewGetShipmentManifestQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentManifestQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetShipmentManifestQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentManifestQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentManifestQueryIsNotConstructed)
}

func TestNewGetAuditTrailQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAuditTrailQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetAuditTrailQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAuditTrailQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAuditTrailQueryIsNotConstructed)
}
