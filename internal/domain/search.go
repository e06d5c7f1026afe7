package domain

// SearchType tags a search hit.
type SearchType string

const (
	SearchTypeUser     SearchType = "USER"
	SearchTypeCategory SearchType = "CATEGORY"
)

// SearchFacetSize caps each facet of a search response.
const SearchFacetSize = 5

// SearchItem is one search hit: a poll author or a category, with the
// number of visible polls behind it.
type SearchItem struct {
	Label string
	Value string
	Type  SearchType
	Count int
}

// CategoryUsage is a category with the number of visible polls using it.
type CategoryUsage struct {
	Category string
	Count    int
}
