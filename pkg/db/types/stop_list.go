package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Stop is a single pick-up or drop-off location on a load. Address and city
// are required before a load is accepted for persistence.
type Stop struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// StopList stores an ordered stop sequence as a JSON text column. A missing
// or empty stored value scans to an empty list, never an error.
type StopList []Stop

func (l *StopList) Scan(src any) error {
	if src == nil {
		*l = StopList{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return l.parseFromString(v)
	case []byte:
		return l.parseFromString(string(v))
	default:
		return fmt.Errorf("StopList: unsupported Scan type %T", src)
	}
}

func (l StopList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]Stop(l))
	if err != nil {
		return nil, fmt.Errorf("StopList: marshal: %w", err)
	}
	return string(raw), nil
}

func (l *StopList) parseFromString(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" || s == "null" {
		*l = StopList{}
		return nil
	}
	var stops []Stop
	if err := json.Unmarshal([]byte(s), &stops); err != nil {
		return fmt.Errorf("StopList: parse: %w", err)
	}
	*l = StopList(stops)
	return nil
}
