package events

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Indexer receives every fetched page of cards. The pagination sweep feeds
// it as a side effect so a later lookup by id can avoid another sweep.
type Indexer interface {
	PutMany(locale string, cards []json.RawMessage)
}

// FetchAll fetches every card matching the criteria, up to maxPages data
// pages.
//
// It first issues a zero-size probe to learn the total result count, then
// walks sequential fixed-size pages. Every page is handed to idx before the
// next one is requested. The returned PageResponse is always the probe
// response, never a merge of per-page metadata, so callers see a single
// consistent totalCount and facet view.
func (c *Client) FetchAll(ctx context.Context, idx Indexer, locale, filters, query string, maxPages int) ([]json.RawMessage, *PageResponse, error) {
	meta, err := c.FetchPage(ctx, PageRequest{Locale: locale, Filters: filters, Top: 0, Skip: 0, Query: query})
	if err != nil {
		return nil, nil, err
	}

	total := meta.TotalCount
	if total == 0 {
		return nil, meta, nil
	}

	limit := total
	if capped := maxPages * PageSize; capped < limit {
		limit = capped
	}

	var allCards []json.RawMessage
	for skip := 0; skip < limit; skip += PageSize {
		page, err := c.FetchPage(ctx, PageRequest{Locale: locale, Filters: filters, Top: PageSize, Skip: skip, Query: query})
		if err != nil {
			return nil, nil, err
		}
		allCards = append(allCards, page.Cards...)
		if idx != nil {
			idx.PutMany(locale, page.Cards)
		}
	}

	log.Debug().
		Str("locale", locale).
		Str("filters", filters).
		Int("total_count", total).
		Int("fetched", len(allCards)).
		Msg("Pagination sweep complete")

	return allCards, meta, nil
}
