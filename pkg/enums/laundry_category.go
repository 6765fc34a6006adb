package enums

import "fmt"

// LaundryCategory classifies the service applied to an item.
type LaundryCategory string

const (
	LaundryCategoryWash     LaundryCategory = "wash"
	LaundryCategoryDryClean LaundryCategory = "dry_clean"
	LaundryCategoryIron     LaundryCategory = "iron"
	LaundryCategoryWashIron LaundryCategory = "wash_iron"
	LaundryCategoryWashFold LaundryCategory = "wash_fold"
	LaundryCategorySteam    LaundryCategory = "steam"
	LaundryCategoryStarch   LaundryCategory = "starch"
)

var validLaundryCategories = []LaundryCategory{
	LaundryCategoryWash,
	LaundryCategoryDryClean,
	LaundryCategoryIron,
	LaundryCategoryWashIron,
	LaundryCategoryWashFold,
	LaundryCategorySteam,
	LaundryCategoryStarch,
}

var laundryCategoryLabels = map[LaundryCategory]string{
	LaundryCategoryWash:     "Wash",
	LaundryCategoryDryClean: "Dry Clean",
	LaundryCategoryIron:     "Iron",
	LaundryCategoryWashIron: "Wash & Iron",
	LaundryCategoryWashFold: "Wash & Fold",
	LaundryCategorySteam:    "Steam Press",
	LaundryCategoryStarch:   "Starch",
}

// String implements fmt.Stringer.
func (c LaundryCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known LaundryCategory.
func (c LaundryCategory) IsValid() bool {
	for _, candidate := range validLaundryCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// Label returns the display label, title-casing unknown raw values.
func (c LaundryCategory) Label() string {
	if label, ok := laundryCategoryLabels[c]; ok {
		return label
	}
	return titleCaseRaw(string(c))
}

// LaundryCategories returns every known category, for pickers.
func LaundryCategories() []LaundryCategory {
	out := make([]LaundryCategory, len(validLaundryCategories))
	copy(out, validLaundryCategories)
	return out
}

// ParseLaundryCategory converts raw input into a LaundryCategory.
func ParseLaundryCategory(value string) (LaundryCategory, error) {
	for _, candidate := range validLaundryCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid laundry category %q", value)
}
