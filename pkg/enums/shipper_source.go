package enums

import "fmt"

// ShipperSource discriminates which optional field group a shipper record
// carries: bill-of-lading contacts or a reference contact.
type ShipperSource string

const (
	ShipperSourceBOL       ShipperSource = "BOL"
	ShipperSourceReference ShipperSource = "Reference"
)

var validShipperSources = []ShipperSource{
	ShipperSourceBOL,
	ShipperSourceReference,
}

// String returns the literal string for the source.
func (s ShipperSource) String() string {
	return string(s)
}

// IsValid reports whether the source is known.
func (s ShipperSource) IsValid() bool {
	for _, candidate := range validShipperSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShipperSource converts raw input into a ShipperSource.
func ParseShipperSource(value string) (ShipperSource, error) {
	for _, candidate := range validShipperSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipper source %q", value)
}
