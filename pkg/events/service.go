package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Page caps for pagination sweeps. A search stops earlier than the
// exhaustive sweep a failed id lookup falls back to.
const (
	searchPageCap = 20
	lookupPageCap = 50
)

// Store is the card index the service reads and the pagination sweeps feed.
type Store interface {
	Indexer
	Get(locale, id string) (json.RawMessage, bool)
}

// Service implements the four event tool operations. Each returns an
// indented UTF-8 JSON document with non-ASCII characters preserved
// literally.
type Service struct {
	client *Client
	store  Store
	logger zerolog.Logger
}

// NewService creates a service on top of the given client and card store.
func NewService(client *Client, st Store) *Service {
	return &Service{
		client: client,
		store:  st,
		logger: log.With().Str("component", "events-service").Logger(),
	}
}

// Search fetches all events matching the filter expression and free-text
// query, projecting each card. total_count reflects the probe metadata and
// can exceed returned when the sweep hits the page cap.
func (s *Service) Search(ctx context.Context, filters, query, locale string) (string, error) {
	cards, meta, err := s.client.FetchAll(ctx, s.store, locale, filters, query, searchPageCap)
	if err != nil {
		return "", err
	}

	evs := make([]Event, 0, len(cards))
	for _, card := range cards {
		evs = append(evs, ParseCard(card))
	}

	s.logger.Info().
		Str("locale", locale).
		Str("filters", filters).
		Str("query", query).
		Int("total_count", meta.TotalCount).
		Int("returned", len(evs)).
		Msg("Search complete")

	return marshalIndent(struct {
		TotalCount int     `json:"total_count"`
		Returned   int     `json:"returned"`
		Events     []Event `json:"events"`
	}{
		TotalCount: meta.TotalCount,
		Returned:   len(evs),
		Events:     evs,
	})
}

// EventDetails looks up one event by id. The store is checked first; on a
// miss a single exhaustive unfiltered sweep repopulates it (the API has no
// get-by-id endpoint). An id that is still absent afterwards yields a
// structured not-found result, not an error.
func (s *Service) EventDetails(ctx context.Context, eventID, locale string) (string, error) {
	card, ok := s.store.Get(locale, eventID)

	if !ok {
		if _, _, err := s.client.FetchAll(ctx, s.store, locale, "", "", lookupPageCap); err != nil {
			return "", err
		}
		card, ok = s.store.Get(locale, eventID)
	}

	if !ok {
		s.logger.Info().Str("event_id", eventID).Str("locale", locale).Msg("Event not found")
		return marshalIndent(map[string]string{
			"error": fmt.Sprintf("Event '%s' not found", eventID),
		})
	}

	return marshalIndent(struct {
		Event
		RawContent json.RawMessage `json:"raw_content"`
	}{
		Event:      ParseCard(card),
		RawContent: rawContent(card),
	})
}

// ListFilters reports every filter category with its exact values and
// event counts, from a single unfiltered zero-size probe.
func (s *Service) ListFilters(ctx context.Context, locale string) (string, error) {
	meta, err := s.client.FetchPage(ctx, PageRequest{Locale: locale, Top: 0, Skip: 0})
	if err != nil {
		return "", err
	}

	return marshalIndent(struct {
		TotalEvents int                      `json:"total_events"`
		Categories  map[string][]FilterValue `json:"categories"`
	}{
		TotalEvents: meta.TotalCount,
		Categories:  groupFilterFacets(meta.Facets),
	})
}

// EventStats reports event counts broken down by facet category for the
// given filter expression, from a single zero-size probe.
func (s *Service) EventStats(ctx context.Context, filters, locale string) (string, error) {
	meta, err := s.client.FetchPage(ctx, PageRequest{Locale: locale, Filters: filters, Top: 0, Skip: 0})
	if err != nil {
		return "", err
	}

	return marshalIndent(struct {
		TotalEvents int                    `json:"total_events"`
		Categories  map[string][]StatValue `json:"categories"`
	}{
		TotalEvents: meta.TotalCount,
		Categories:  groupStatFacets(meta.Facets),
	})
}

// marshalIndent renders v as indented JSON without HTML escaping, so URLs
// and non-ASCII text round-trip literally.
func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal tool result: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
