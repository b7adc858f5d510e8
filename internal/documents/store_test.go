package documents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestSaveAndPath(t *testing.T) {
	store, dir := newTestStore(t)

	name, err := store.Save("L100", []byte("doc bytes"))
	require.NoError(t, err)
	assert.Equal(t, "L100.pdf", name)

	path, err := store.Path("L100")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "L100.pdf"), path)
}

func TestPathMissingDocument(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Path("L404")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, dir := newTestStore(t)

	_, err := store.Save("L100", []byte("doc"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("L100"))
	_, statErr := os.Stat(filepath.Join(dir, "L100.pdf"))
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, store.Delete("L100"))
}

func TestFileNameSanitizesLoadNo(t *testing.T) {
	assert.Equal(t, "a_b.pdf", FileName("a/b"))
	assert.Equal(t, "_.pdf", FileName(".."))
}
