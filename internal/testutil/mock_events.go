// Package testutil provides testing utilities for the events MCP server.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest is one decoded request body received by the mock API.
type RecordedRequest struct {
	Locale   string `json:"locale"`
	Top      int    `json:"top"`
	Skip     int    `json:"skip"`
	Filters  string `json:"filters"`
	Scenario string `json:"scenario"`
	Query    string `json:"query"`
}

// MockEventsAPI is a configurable stand-in for the events card endpoint.
// It serves generated cards for any window of a declared total, records
// every request body, and can drop connections to simulate transport
// failures.
type MockEventsAPI struct {
	server *httptest.Server

	mu         sync.Mutex
	totalCount int
	facets     []map[string]any
	cards      []json.RawMessage
	failures   int

	requests []RecordedRequest
}

// NewMockEventsAPI creates a mock server declaring the given total count.
func NewMockEventsAPI(totalCount int) *MockEventsAPI {
	mock := &MockEventsAPI{totalCount: totalCount}
	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// URL returns the mock server URL.
func (m *MockEventsAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockEventsAPI) Close() {
	m.server.Close()
}

// SetFacets configures the facet list returned on zero-size probes.
func (m *MockEventsAPI) SetFacets(facets []map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.facets = facets
}

// SetCards overrides the generated cards with an explicit list. The declared
// total count is set to its length.
func (m *MockEventsAPI) SetCards(cards []json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = cards
	m.totalCount = len(cards)
}

// FailNext drops the next n connections without a response, which the
// client sees as transport failures.
func (m *MockEventsAPI) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = n
}

// RequestCount returns the number of requests that reached a handler,
// including dropped ones.
func (m *MockEventsAPI) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of all recorded request bodies.
func (m *MockEventsAPI) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockEventsAPI) handle(w http.ResponseWriter, r *http.Request) {
	var req RecordedRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	m.mu.Lock()
	m.requests = append(m.requests, req)
	drop := m.failures > 0
	if drop {
		m.failures--
	}
	total := m.totalCount
	facets := m.facets
	custom := m.cards
	m.mu.Unlock()

	if drop {
		hj, ok := w.(http.Hijacker)
		if !ok {
			panic("mock server: response writer does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			panic(err)
		}
		conn.Close()
		return
	}

	cards := cardWindow(custom, total, req.Top, req.Skip)

	resp := map[string]any{
		"totalCount": total,
		"cards":      cards,
	}
	if facets != nil {
		resp["facets"] = facets
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(resp)
}

// cardWindow returns the requested page of cards. With no explicit card
// list, cards are generated as evt-<index> placeholders.
func cardWindow(custom []json.RawMessage, total, top, skip int) []json.RawMessage {
	if top <= 0 || skip >= total {
		return []json.RawMessage{}
	}

	end := skip + top
	if end > total {
		end = total
	}

	if custom != nil {
		if end > len(custom) {
			end = len(custom)
		}
		return custom[skip:end]
	}

	cards := make([]json.RawMessage, 0, end-skip)
	for i := skip; i < end; i++ {
		card := fmt.Sprintf(`{"content":{"id":"evt-%d","title":"Event %d"}}`, i, i)
		cards = append(cards, json.RawMessage(card))
	}
	return cards
}
