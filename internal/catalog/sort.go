package catalog

import "fmt"

// SortField is a discover-query sort field.
type SortField string

const (
	SortPopularity    SortField = "popularity"
	SortVoteAverage   SortField = "vote_average"
	SortReleaseDate   SortField = "release_date"
	SortOriginalTitle SortField = "original_title"
)

// SortOrder is a sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Sort is a discover-query sort specification, serialized as
// "{field}.{asc|desc}".
type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort is most-popular-first, the catalog's default listing.
var DefaultSort = Sort{Field: SortPopularity, Order: Descending}

// Param returns the sort_by query value.
func (s Sort) Param() string {
	return fmt.Sprintf("%s.%s", s.Field, s.Order)
}

// ParseSortField maps a field name to a SortField, defaulting to popularity.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortVoteAverage, SortReleaseDate, SortOriginalTitle:
		return SortField(s)
	default:
		return SortPopularity
	}
}

// ParseSortOrder maps a direction name to a SortOrder, defaulting to desc.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == Ascending {
		return Ascending
	}
	return Descending
}
