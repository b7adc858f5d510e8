package shippers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

func setupShippersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "shippers.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Shipper{}))
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db := setupShippersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc, db
}

func TestCreateShipperBOLLeavesReferenceGroupEmpty(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.CreateShipper(context.Background(), Input{
		Customer:  "Acme Foods",
		Source:    "BOL",
		Consignee: "Acme Receiving",
		BOLState:  "NV",
		BOLNotes:  "dock 4",

		// reference fields populated on purpose; they must be ignored
		Reference:      "Jane Smith",
		ReferencePhone: "555-0100",
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	var row models.Shipper
	require.NoError(t, db.First(&row, id).Error)

	assert.Equal(t, "Acme Receiving", row.Consignee)
	assert.Equal(t, "NV", row.BOLState)
	assert.Equal(t, "dock 4", row.BOLNotes)

	assert.Empty(t, row.Reference)
	assert.Empty(t, row.ReferencePhone)
	assert.Empty(t, row.ReferenceEmail)
	assert.Empty(t, row.ReferenceWebsite)
}

func TestCreateShipperReferenceLeavesBOLGroupEmpty(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.CreateShipper(context.Background(), Input{
		Customer:       "Blue Line Produce",
		Source:         "Reference",
		Reference:      "Tom Chen",
		ReferencePhone: "555-0199",

		Consignee: "should not persist",
		BOLNotes:  "should not persist",
	})
	require.NoError(t, err)

	var row models.Shipper
	require.NoError(t, db.First(&row, id).Error)

	assert.Equal(t, "Tom Chen", row.Reference)
	assert.Equal(t, "555-0199", row.ReferencePhone)

	assert.Empty(t, row.Consignee)
	assert.Empty(t, row.BOLNotes)
	assert.Empty(t, row.BOLState)
}

func TestCreateShipperRejectsUnknownSource(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateShipper(context.Background(), Input{
		Customer: "Acme",
		Source:   "Walk-In",
	})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateShipperRequiresCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateShipper(context.Background(), Input{Source: "BOL"})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateShipperSourceFlipClearsStaleGroup(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.CreateShipper(context.Background(), Input{
		Customer:  "Acme Foods",
		Source:    "BOL",
		Consignee: "Acme Receiving",
	})
	require.NoError(t, err)

	changed, err := svc.UpdateShipper(context.Background(), id, Input{
		Customer:  "Acme Foods",
		Source:    "Reference",
		Reference: "Tom Chen",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	var row models.Shipper
	require.NoError(t, db.First(&row, id).Error)
	assert.Equal(t, "Tom Chen", row.Reference)
	assert.Empty(t, row.Consignee)
}

func TestUpdateStatusAndNotesTouchOnlyTheirColumns(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.CreateShipper(context.Background(), Input{
		Customer: "Acme Foods",
		Source:   "Reference",
		Notes:    "initial",
	})
	require.NoError(t, err)

	changed, err := svc.UpdateStatus(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	changed, err = svc.UpdateNotes(context.Background(), id, "follow up friday")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	var row models.Shipper
	require.NoError(t, db.First(&row, id).Error)
	assert.True(t, row.Status)
	assert.Equal(t, "follow up friday", row.Notes)
	assert.Equal(t, "Acme Foods", row.Customer)
}

func TestDeleteShipperReportsChangedCount(t *testing.T) {
	svc, _ := newTestService(t)

	id, err := svc.CreateShipper(context.Background(), Input{
		Customer: "Acme Foods",
		Source:   "Reference",
	})
	require.NoError(t, err)

	changed, err := svc.DeleteShipper(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	changed, err = svc.DeleteShipper(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}
