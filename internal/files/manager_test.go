package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	return m
}

func TestStoredNameConventions(t *testing.T) {
	cases := []struct {
		role     enums.FileRole
		original string
		want     string
	}{
		{enums.FileRoleOperatingAuthority, "authority.pdf", "MC123_OpAuth.pdf"},
		{enums.FileRoleW9Form, "w9-2026.pdf", "MC123_W9.pdf"},
		{enums.FileRoleInsuranceCertificate, "coi.pdf", "MC123_COI_coi.pdf"},
		{enums.FileRoleInsuranceCertificates, "liability.pdf", "MC123_COIs_liability.pdf"},
	}

	for _, tc := range cases {
		got, err := StoredName("MC123", tc.role, tc.original)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestStoredNameRejectsBadInput(t *testing.T) {
	_, err := StoredName("", enums.FileRoleW9Form, "w9.pdf")
	require.Error(t, err)

	_, err = StoredName("MC123", enums.FileRole("somethingElse"), "w9.pdf")
	require.Error(t, err)
}

func TestStoredNameSanitizesPathSeparators(t *testing.T) {
	got, err := StoredName("MC123", enums.FileRoleInsuranceCertificate, "../../etc/passwd")
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(got, "/\\"))
}

func TestStoreAndListFor(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Store("MC123", enums.FileRoleW9Form, "w9.pdf", strings.NewReader("w9 bytes"))
	require.NoError(t, err)
	_, err = m.Store("MC123", enums.FileRoleInsuranceCertificates, "coi-a.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = m.Store("MC999", enums.FileRoleW9Form, "w9.pdf", strings.NewReader("other carrier"))
	require.NoError(t, err)

	names, err := m.ListFor("MC123")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"MC123_W9.pdf", "MC123_COIs_coi-a.pdf"}, names)

	data, err := os.ReadFile(filepath.Join(m.Dir(), "MC123_W9.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "w9 bytes", string(data))
}

func TestStoreReplacesSameRole(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Store("MC123", enums.FileRoleW9Form, "w9-old.pdf", strings.NewReader("old"))
	require.NoError(t, err)
	_, err = m.Store("MC123", enums.FileRoleW9Form, "w9-new.pdf", strings.NewReader("new"))
	require.NoError(t, err)

	names, err := m.ListFor("MC123")
	require.NoError(t, err)
	assert.Equal(t, []string{"MC123_W9.pdf"}, names)

	data, err := os.ReadFile(filepath.Join(m.Dir(), "MC123_W9.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestDeleteForRemovesOnlyMatchingFiles(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Store("MC123", enums.FileRoleW9Form, "w9.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	_, err = m.Store("MC123", enums.FileRoleInsuranceCertificate, "coi.pdf", strings.NewReader("y"))
	require.NoError(t, err)
	_, err = m.Store("MC999", enums.FileRoleW9Form, "w9.pdf", strings.NewReader("z"))
	require.NoError(t, err)

	removed, err := m.DeleteFor("MC123")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := m.ListFor("MC999")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteForNoFilesIsNotAnError(t *testing.T) {
	m := newTestManager(t)

	removed, err := m.DeleteFor("MC777")
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
