package loads

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	dbtypes "github.com/royalstarlog/freightdesk-backend/pkg/db/types"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

type stubDocStore struct {
	deleted []string
	err     error
}

func (s *stubDocStore) Delete(loadNo string) error {
	s.deleted = append(s.deleted, loadNo)
	return s.err
}

func setupLoadsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "loads.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Load{}))
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB, *stubDocStore) {
	t.Helper()

	db := setupLoadsTestDB(t)
	docs := &stubDocStore{}
	svc, err := NewService(NewRepository(db), docs, nil)
	require.NoError(t, err)
	return svc, db, docs
}

func validInput() Input {
	return Input{
		LoadNo:       "L100",
		Customer:     "Acme",
		PickUpCount:  1,
		DropOffCount: 1,
		LoadStatus:   "open",
		PickUps:      []dbtypes.Stop{{Address: "1 Main St", City: "Reno"}},
		DropOffs:     []dbtypes.Stop{{Address: "2 Oak Ave", City: "Tulsa"}},
	}
}

func TestCreateLoadRoundTripsStops(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.CreateLoad(context.Background(), validInput())
	require.NoError(t, err)
	require.Greater(t, created.ID, int64(0))

	row, err := svc.GetLoadByLoadNo(context.Background(), "L100")
	require.NoError(t, err)

	require.Len(t, row.PickUps, 1)
	require.Len(t, row.DropOffs, 1)
	assert.Equal(t, "1 Main St", row.PickUps[0].Address)
	assert.Equal(t, "Reno", row.PickUps[0].City)
	assert.Equal(t, "2 Oak Ave", row.DropOffs[0].Address)
	assert.Equal(t, "Tulsa", row.DropOffs[0].City)
	assert.Equal(t, enums.LoadStatusOpen, row.LoadStatus)
}

func TestCreateLoadRejectsStopMissingCity(t *testing.T) {
	svc, db, _ := newTestService(t)

	input := validInput()
	input.PickUps = []dbtypes.Stop{{Address: "1 Main St"}}

	_, err := svc.CreateLoad(context.Background(), input)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	var count int64
	require.NoError(t, db.Model(&models.Load{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateLoadRejectsStopMissingAddress(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validInput()
	input.DropOffs = []dbtypes.Stop{{City: "Tulsa"}}

	_, err := svc.CreateLoad(context.Background(), input)
	require.Error(t, err)
}

func TestCreateLoadRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validInput()
	input.LoadStatus = "paused"

	_, err := svc.CreateLoad(context.Background(), input)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetLoadByLoadNoMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetLoadByLoadNo(context.Background(), "L404")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateStatusChangesOnlyStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.CreateLoad(context.Background(), validInput())
	require.NoError(t, err)

	changed, err := svc.UpdateStatus(context.Background(), created.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	row, err := svc.GetLoad(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.LoadStatusActive, row.LoadStatus)
	assert.Equal(t, "Acme", row.Customer)
	assert.Len(t, row.PickUps, 1)
}

func TestDeleteLoadCleansUpDocumentBestEffort(t *testing.T) {
	svc, _, docs := newTestService(t)

	created, err := svc.CreateLoad(context.Background(), validInput())
	require.NoError(t, err)

	changed, err := svc.DeleteLoad(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
	assert.Equal(t, []string{"L100"}, docs.deleted)
}

func TestDeleteLoadSucceedsWhenDocumentCleanupFails(t *testing.T) {
	svc, _, docs := newTestService(t)
	docs.err = assert.AnError

	created, err := svc.CreateLoad(context.Background(), validInput())
	require.NoError(t, err)

	changed, err := svc.DeleteLoad(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
}

func TestUpdateLoadRewritesStops(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.CreateLoad(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.PickUps = []dbtypes.Stop{
		{Address: "1 Main St", City: "Reno"},
		{Address: "9 Pine Rd", City: "Elko"},
	}
	input.PickUpCount = 2

	changed, err := svc.UpdateLoad(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	row, err := svc.GetLoad(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, row.PickUps, 2)
	assert.Equal(t, "Elko", row.PickUps[1].City)
}
