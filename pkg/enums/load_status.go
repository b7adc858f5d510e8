package enums

import "fmt"

// LoadStatus tracks where a freight load sits in its lifecycle.
type LoadStatus string

const (
	LoadStatusOpen   LoadStatus = "open"
	LoadStatusActive LoadStatus = "active"
	LoadStatusClosed LoadStatus = "closed"
)

var validLoadStatuses = []LoadStatus{
	LoadStatusOpen,
	LoadStatusActive,
	LoadStatusClosed,
}

// String returns the literal string for the status.
func (s LoadStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is known.
func (s LoadStatus) IsValid() bool {
	for _, candidate := range validLoadStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLoadStatus converts raw input into a LoadStatus.
func ParseLoadStatus(value string) (LoadStatus, error) {
	for _, candidate := range validLoadStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid load status %q", value)
}
