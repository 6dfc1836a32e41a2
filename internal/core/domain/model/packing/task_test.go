package packing

import (
	"errors"
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDimensions(t *testing.T) Dimensions {
	t.Helper()
	dims, err := NewDimensions(decimal.NewFromInt(40), decimal.NewFromInt(30), decimal.NewFromInt(20))
	require.NoError(t, err)
	return dims
}

func testPackage(t *testing.T, maxWeight float64) *Package {
	t.Helper()
	pkg, err := NewPackage(kernel.NewUUID(), TypeBox, testDimensions(t), decimal.NewFromFloat(maxWeight))
	require.NoError(t, err)
	return pkg
}

func testContent(t *testing.T, orderItemID kernel.UUID, qty int64, unitWeight float64) *PackageItem {
	t.Helper()
	item, err := NewPackageItem(kernel.NewUUID(), orderItemID, "SKU-001",
		decimal.NewFromInt(qty), decimal.NewFromFloat(unitWeight))
	require.NoError(t, err)
	return item
}

func testTask(t *testing.T) *Task {
	t.Helper()
	task, err := NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return task
}

func Test_NewPackage(t *testing.T) {
	pkg := testPackage(t, 25)

	assert.NoError(t, pkg.Validate())
	assert.Equal(t, PackageOpen, pkg.Status())
	assert.True(t, pkg.IsEmpty())
	assert.True(t, strings.HasPrefix(pkg.Number(), "PKG-"), pkg.Number())

	// empty box weighs its tare
	assert.True(t, pkg.GrossWeight().Equal(TypeBox.TareWeight()))
}

func Test_NewDimensions_RejectsNonPositive(t *testing.T) {
	cases := []struct {
		name                  string
		length, width, height int64
	}{
		{"zero length", 0, 30, 20},
		{"negative width", 40, -1, 20},
		{"zero height", 40, 30, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDimensions(decimal.NewFromInt(tc.length),
				decimal.NewFromInt(tc.width), decimal.NewFromInt(tc.height))
			require.Error(t, err)
		})
	}
}

func Test_NewPackage_Dimensions(t *testing.T) {
	pkg := testPackage(t, 25)
	assert.True(t, pkg.Dimensions().Length().Equal(decimal.NewFromInt(40)))
	assert.True(t, pkg.Dimensions().Width().Equal(decimal.NewFromInt(30)))
	assert.True(t, pkg.Dimensions().Height().Equal(decimal.NewFromInt(20)))
}

func Test_NewPackage_CapBelowTare(t *testing.T) {
	_, err := NewPackage(kernel.NewUUID(), TypePallet, testDimensions(t), decimal.NewFromInt(5))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Package_AddItem(t *testing.T) {
	pkg := testPackage(t, 25)
	orderItemID := kernel.NewUUID()

	require.NoError(t, pkg.AddItem(testContent(t, orderItemID, 3, 2)))
	assert.False(t, pkg.IsEmpty())
	// 0.35 tare + 3*2
	assert.True(t, pkg.GrossWeight().Equal(decimal.NewFromFloat(6.35)), "got %s", pkg.GrossWeight())

	// same order line accumulates instead of adding a second line
	require.NoError(t, pkg.AddItem(testContent(t, orderItemID, 2, 2)))
	assert.Len(t, pkg.Items(), 1)
	assert.True(t, pkg.QuantityOf(orderItemID).Equal(decimal.NewFromInt(5)))

	// a different order line is its own line
	require.NoError(t, pkg.AddItem(testContent(t, kernel.NewUUID(), 1, 2)))
	assert.Len(t, pkg.Items(), 2)
}

func Test_Package_AddItem_WeightCap(t *testing.T) {
	// cap 10.35: tare 0.35 leaves exactly 10 for contents
	pkg, err := NewPackage(kernel.NewUUID(), TypeBox, testDimensions(t), decimal.NewFromFloat(10.35))
	require.NoError(t, err)

	// exactly at the cap is allowed
	require.NoError(t, pkg.AddItem(testContent(t, kernel.NewUUID(), 5, 2)))
	assert.True(t, pkg.GrossWeight().Equal(decimal.NewFromFloat(10.35)))

	// the slightest overshoot is rejected and nothing is mutated
	tiny, err := NewPackageItem(kernel.NewUUID(), kernel.NewUUID(), "SKU-002",
		decimal.NewFromInt(1), decimal.RequireFromString("0.0001"))
	require.NoError(t, err)

	addErr := pkg.AddItem(tiny)
	require.Error(t, addErr)
	assert.ErrorIs(t, addErr, errs.ErrPackageOverweight)

	var overweight *errs.PackageOverweightError
	require.True(t, errors.As(addErr, &overweight))
	assert.Equal(t, pkg.Number(), overweight.PackageNumber)
	assert.True(t, overweight.Projected.Equal(decimal.RequireFromString("10.3501")))

	assert.Len(t, pkg.Items(), 1)
	assert.True(t, pkg.GrossWeight().Equal(decimal.NewFromFloat(10.35)))
}

func Test_Package_Finalize(t *testing.T) {
	pkg := testPackage(t, 25)

	// empty package cannot be sealed
	assert.ErrorIs(t, pkg.Finalize(), errs.ErrValueIsInvalid)

	require.NoError(t, pkg.AddItem(testContent(t, kernel.NewUUID(), 1, 1)))
	require.NoError(t, pkg.Finalize())
	assert.Equal(t, PackageFinalized, pkg.Status())

	// sealed packages reject both re-finalizing and new items
	assert.ErrorIs(t, pkg.Finalize(), errs.ErrInvalidTransition)
	assert.ErrorIs(t, pkg.AddItem(testContent(t, kernel.NewUUID(), 1, 1)), errs.ErrValueIsInvalid)
}

func Test_Task_OpenPackage(t *testing.T) {
	task := testTask(t)
	assert.Equal(t, StatusPending, task.Status())
	assert.True(t, strings.HasPrefix(task.Number(), "PAT-"), task.Number())

	require.NoError(t, task.OpenPackage(testPackage(t, 25)))
	assert.Equal(t, StatusInProgress, task.Status())

	require.NoError(t, task.OpenPackage(testPackage(t, 25)))
	assert.Len(t, task.Packages(), 2)
}

func Test_Task_QuantityPacked_AcrossPackages(t *testing.T) {
	task := testTask(t)
	orderItemID := kernel.NewUUID()

	first := testPackage(t, 25)
	require.NoError(t, first.AddItem(testContent(t, orderItemID, 2, 1)))
	second := testPackage(t, 25)
	require.NoError(t, second.AddItem(testContent(t, orderItemID, 3, 1)))

	require.NoError(t, task.OpenPackage(first))
	require.NoError(t, task.OpenPackage(second))

	assert.True(t, task.QuantityPacked(orderItemID).Equal(decimal.NewFromInt(5)))
	assert.True(t, task.QuantityPacked(kernel.NewUUID()).IsZero())
}

func Test_Task_Complete(t *testing.T) {
	task := testTask(t)

	// pending task has no legal edge to completed
	assert.ErrorIs(t, task.Complete(), errs.ErrInvalidTransition)

	pkg := testPackage(t, 25)
	require.NoError(t, pkg.AddItem(testContent(t, kernel.NewUUID(), 1, 1)))
	require.NoError(t, task.OpenPackage(pkg))

	// open package blocks completion
	assert.ErrorIs(t, task.Complete(), errs.ErrValueIsInvalid)

	require.NoError(t, pkg.Finalize())
	require.NoError(t, task.Complete())
	assert.Equal(t, StatusCompleted, task.Status())
	require.NotNil(t, task.CompletedAt())
}

func Test_Task_Cancel(t *testing.T) {
	task := testTask(t)
	require.NoError(t, task.Cancel())
	assert.Equal(t, StatusCancelled, task.Status())
	assert.ErrorIs(t, task.OpenPackage(testPackage(t, 25)), errs.ErrInvalidTransition)
}

func Test_PackageTypeFromString(t *testing.T) {
	pt, err := PackageTypeFromString("Pallet")
	require.NoError(t, err)
	assert.Equal(t, TypePallet, pt)

	_, err = PackageTypeFromString("Crate")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
