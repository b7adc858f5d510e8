package rateconfirmations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/internal/documents"
	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

func setupRateConTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ratecons.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RateConfirmation{}))
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB, string) {
	t.Helper()

	db := setupRateConTestDB(t)
	docDir := t.TempDir()
	store, err := documents.NewStore(docDir)
	require.NoError(t, err)

	svc, err := NewService(NewRepository(db), documents.NewPDFConverter(), store)
	require.NoError(t, err)
	return svc, db, docDir
}

func TestSaveTwiceKeepsOneRowWithLatestContent(t *testing.T) {
	svc, db, _ := newTestService(t)

	_, err := svc.SaveRateConfirmation(context.Background(), "L100", "first draft")
	require.NoError(t, err)

	_, err = svc.SaveRateConfirmation(context.Background(), "L100", "final terms")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.RateConfirmation{}).Where("load_no = ?", "L100").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	row, err := svc.GetRateConfirmation(context.Background(), "L100")
	require.NoError(t, err)
	assert.Equal(t, "final terms", row.Content)
}

func TestSaveWritesDocumentFile(t *testing.T) {
	svc, _, docDir := newTestService(t)

	_, err := svc.SaveRateConfirmation(context.Background(), "L200", "carrier: Roadrunner\nrate: $1800")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(docDir, "L200.pdf"))
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF-", string(data[:5]))

	path, err := svc.DocumentPath(context.Background(), "L200")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(docDir, "L200.pdf"), path)
}

func TestSaveRequiresLoadNoAndContent(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SaveRateConfirmation(context.Background(), "", "content")
	require.Error(t, err)

	_, err = svc.SaveRateConfirmation(context.Background(), "L1", "  ")
	require.Error(t, err)
}

func TestDocumentPathMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.DocumentPath(context.Background(), "L404")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteRemovesRowAndDocument(t *testing.T) {
	svc, _, docDir := newTestService(t)

	_, err := svc.SaveRateConfirmation(context.Background(), "L300", "terms")
	require.NoError(t, err)

	changed, err := svc.DeleteRateConfirmation(context.Background(), "L300")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	_, statErr := os.Stat(filepath.Join(docDir, "L300.pdf"))
	assert.True(t, os.IsNotExist(statErr))

	// deleting again is a no-op, not an error
	changed, err = svc.DeleteRateConfirmation(context.Background(), "L300")
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}

func TestSaveDocumentStoresRawBytes(t *testing.T) {
	svc, _, docDir := newTestService(t)

	name, err := svc.SaveDocument(context.Background(), "L400", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "L400.pdf", name)

	data, err := os.ReadFile(filepath.Join(docDir, "L400.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}
