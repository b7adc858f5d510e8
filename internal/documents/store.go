package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

// Store keeps generated rate-confirmation documents on disk, one file per
// load number.
type Store struct {
	dir string
}

// NewStore ensures the document directory exists and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("document directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating document directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// FileName returns the canonical document name for a load.
func FileName(loadNo string) string {
	return sanitizeLoadNo(loadNo) + ".pdf"
}

// Save writes the document bytes for the load, replacing any previous version.
func (s *Store) Save(loadNo string, data []byte) (string, error) {
	if strings.TrimSpace(loadNo) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}
	name := FileName(loadNo)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write rate confirmation document")
	}
	return name, nil
}

// Path returns the on-disk path of the load's document, or NotFound when no
// document has been generated.
func (s *Store) Path(loadNo string) (string, error) {
	if strings.TrimSpace(loadNo) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}
	path := filepath.Join(s.dir, FileName(loadNo))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, "rate confirmation document not found")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "stat rate confirmation document")
	}
	return path, nil
}

// Delete removes the load's document. Deleting a missing document is not an
// error.
func (s *Store) Delete(loadNo string) error {
	if strings.TrimSpace(loadNo) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}
	err := os.Remove(filepath.Join(s.dir, FileName(loadNo)))
	if err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete rate confirmation document")
	}
	return nil
}

func sanitizeLoadNo(loadNo string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return replacer.Replace(strings.TrimSpace(loadNo))
}
