package events

import "encoding/json"

// PageRequest describes a single request against the events card endpoint.
// Top is the page size; a Top of 0 is a metadata probe that transfers no
// cards but still reports totalCount and facets.
type PageRequest struct {
	Locale  string
	Filters string
	Top     int
	Skip    int
	Query   string
}

// requestBody is the wire shape of the upstream POST payload.
type requestBody struct {
	Locale   string `json:"locale"`
	Top      int    `json:"top"`
	Skip     int    `json:"skip"`
	Filters  string `json:"filters"`
	Scenario string `json:"scenario"`
	Query    string `json:"query"`
}

// PageResponse is the subset of the upstream response this client relies on.
// Cards are kept as raw JSON: the upstream card shape is not part of any
// contract and is only ever picked apart defensively (see ParseCard).
type PageResponse struct {
	TotalCount int               `json:"totalCount"`
	Cards      []json.RawMessage `json:"cards"`
	Facets     []Facet           `json:"facets"`
}

// Facet is an upstream-reported "category:value" tag with an occurrence count.
type Facet struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}
