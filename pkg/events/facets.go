package events

import (
	"sort"
	"strings"
)

// statsTopN caps how many values get_event_stats reports per category.
const statsTopN = 20

// FilterValue is one selectable filter value with its event count.
type FilterValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// StatValue is one statistics bucket within a category.
type StatValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// groupFilterFacets groups "category:value" facets by category for filter
// discovery. Facets without a colon separator and facets with a non-positive
// count are dropped: a filter value with no matching events is not a viable
// choice. Values are sorted by count descending; ties keep input order.
func groupFilterFacets(facets []Facet) map[string][]FilterValue {
	categories := make(map[string][]FilterValue)
	for _, f := range facets {
		cat, val, ok := strings.Cut(f.ID, ":")
		if !ok || f.Count <= 0 {
			continue
		}
		categories[cat] = append(categories[cat], FilterValue{Value: val, Count: f.Count})
	}

	for cat := range categories {
		values := categories[cat]
		sort.SliceStable(values, func(i, j int) bool {
			return values[i].Count > values[j].Count
		})
	}
	return categories
}

// groupStatFacets groups "category:value" facets by category for statistics.
// Unlike groupFilterFacets, zero-count facets are retained: the statistics
// view reports the full breakdown, empty buckets included. Each category is
// sorted by count descending and truncated to the top entries.
func groupStatFacets(facets []Facet) map[string][]StatValue {
	categories := make(map[string][]StatValue)
	for _, f := range facets {
		cat, val, ok := strings.Cut(f.ID, ":")
		if !ok {
			continue
		}
		categories[cat] = append(categories[cat], StatValue{Name: val, Count: f.Count})
	}

	for cat := range categories {
		values := categories[cat]
		sort.SliceStable(values, func(i, j int) bool {
			return values[i].Count > values[j].Count
		})
		if len(values) > statsTopN {
			categories[cat] = values[:statsTopN]
		}
	}
	return categories
}
