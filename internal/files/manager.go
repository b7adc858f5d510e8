package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

// Manager owns the carrier upload directory. Every stored file is named after
// the carrier's MC number so ownership can be recovered from the name alone.
type Manager struct {
	dir string
}

// NewManager ensures the upload directory exists and returns a manager over it.
func NewManager(dir string) (*Manager, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Dir returns the managed directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// StoredName derives the on-disk filename for a document. Single-file roles
// keep only the original extension; multi-file roles keep the whole original
// name to avoid collisions between certificates.
func StoredName(mcNumber string, role enums.FileRole, originalName string) (string, error) {
	mc := strings.TrimSpace(mcNumber)
	if mc == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "mc number is required")
	}
	base := sanitizeName(filepath.Base(originalName))
	if base == "" || base == "." {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "original filename is required")
	}
	ext := filepath.Ext(base)

	switch role {
	case enums.FileRoleOperatingAuthority:
		return mc + "_OpAuth" + ext, nil
	case enums.FileRoleInsuranceCertificates:
		return mc + "_COIs_" + base, nil
	case enums.FileRoleW9Form:
		return mc + "_W9" + ext, nil
	case enums.FileRoleInsuranceCertificate:
		return mc + "_COI_" + base, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown file role %q", role))
}

// Store writes the document under the derived name, replacing any previous
// file with the same name, and returns the stored filename.
func (m *Manager) Store(mcNumber string, role enums.FileRole, originalName string, src io.Reader) (string, error) {
	name, err := StoredName(mcNumber, role, originalName)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write upload file")
	}
	return name, nil
}

// ListFor returns the stored filenames belonging to the MC number, sorted by
// directory order.
func (m *Manager) ListFor(mcNumber string) ([]string, error) {
	mc := strings.TrimSpace(mcNumber)
	if mc == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mc number is required")
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read upload directory")
	}

	prefix := mc + "_"
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// DeleteFor removes every file belonging to the MC number and reports how many
// were removed. Missing files are not an error; individual removal failures
// are aggregated so one bad file does not strand the rest.
func (m *Manager) DeleteFor(mcNumber string) (int, error) {
	names, err := m.ListFor(mcNumber)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs error
	for _, name := range names {
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf("removing %s: %w", name, err))
			continue
		}
		removed++
	}
	if errs != nil {
		return removed, pkgerrors.Wrap(pkgerrors.CodeInternal, errs, "delete carrier files")
	}
	return removed, nil
}

// sanitizeName strips path separators and control characters so a hostile
// original filename cannot escape the upload directory.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return replacer.Replace(name)
}
