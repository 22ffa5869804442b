package enums

import "fmt"

// SortMode selects the ordering applied to the visible catalog.
type SortMode string

const (
	SortModeFeatured   SortMode = "featured"
	SortModePriceAsc   SortMode = "price_asc"
	SortModePriceDesc  SortMode = "price_desc"
	SortModeRatingDesc SortMode = "rating_desc"
)

var validSortModes = []SortMode{
	SortModeFeatured,
	SortModePriceAsc,
	SortModePriceDesc,
	SortModeRatingDesc,
}

// String implements fmt.Stringer.
func (m SortMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known SortMode.
func (m SortMode) IsValid() bool {
	for _, candidate := range validSortModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseSortMode converts raw input into a SortMode. Empty input yields featured.
func ParseSortMode(value string) (SortMode, error) {
	if value == "" {
		return SortModeFeatured, nil
	}
	for _, candidate := range validSortModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort mode %q", value)
}
