package dbtypes

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringList stores a list of plain values as a single comma-joined text
// column, matching the stored-filename convention for multi-file roles.
type StringList []string

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	switch v := src.(type) {
	case string:
		l.parseFromString(v)
		return nil
	case []byte:
		l.parseFromString(string(v))
		return nil
	default:
		return fmt.Errorf("StringList: unsupported Scan type %T", src)
	}
}

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	return strings.Join(l, ","), nil
}

func (l *StringList) parseFromString(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		*l = StringList{}
		return
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = StringList(out)
}
