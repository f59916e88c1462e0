package valueobject

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Region – immutable value object
// ---------------------------------------------------------------------------

// Region identifies one of the four census regions used by the
// residual-income threshold tables. The zero value means "no region
// supplied" and callers fall back to the national formula.
type Region struct {
	value string
}

const (
	regionNortheast = "NORTHEAST"
	regionMidwest   = "MIDWEST"
	regionSouth     = "SOUTH"
	regionWest      = "WEST"
)

var (
	RegionNortheast = Region{value: regionNortheast}
	RegionMidwest   = Region{value: regionMidwest}
	RegionSouth     = Region{value: regionSouth}
	RegionWest      = Region{value: regionWest}
)

var validRegions = map[string]Region{
	regionNortheast: RegionNortheast,
	regionMidwest:   RegionMidwest,
	regionSouth:     RegionSouth,
	regionWest:      RegionWest,
}

// NewRegion creates a Region from a raw string, case-insensitively.
func NewRegion(s string) (Region, error) {
	v, ok := validRegions[strings.ToUpper(s)]
	if !ok {
		return Region{}, fmt.Errorf("invalid region: %q", s)
	}
	return v, nil
}

// String returns the string representation of the region.
func (r Region) String() string { return r.value }

// IsZero returns true when no region was supplied.
func (r Region) IsZero() bool { return r.value == "" }

// Equal returns true when both regions carry the same value.
func (r Region) Equal(other Region) bool { return r.value == other.value }

// MarshalText implements encoding.TextMarshaler so regions serialise as
// their plain string form.
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input yields
// the zero region.
func (r *Region) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = Region{}
		return nil
	}
	parsed, err := NewRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
