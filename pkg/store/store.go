// Package store holds every card seen by any pagination sweep, keyed by
// locale and event id. Entries live for the lifetime of the process; there
// is no eviction and no TTL. Later writes with the same key overwrite
// earlier ones.
package store

import (
	"encoding/json"
	"sync"
)

type cardKey struct {
	locale string
	id     string
}

// Store is an in-memory card index. The tool dispatch loop is sequential,
// but the store carries its own lock so a concurrent transport cannot
// observe a torn read-modify-write.
type Store struct {
	mu    sync.RWMutex
	cards map[cardKey]json.RawMessage
}

// New creates an empty store.
func New() *Store {
	return &Store{
		cards: make(map[cardKey]json.RawMessage),
	}
}

// Get returns the raw card stored under (locale, id).
func (s *Store) Get(locale, id string) (json.RawMessage, bool) {
	s.mu.RLock()
	card, ok := s.cards[cardKey{locale: locale, id: id}]
	s.mu.RUnlock()

	if ok {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
	return card, ok
}

// PutMany indexes a page of cards under the given locale. Cards whose
// content id is empty or undecodable are skipped. Indexing the same card
// twice is idempotent; the most recent write wins.
func (s *Store) PutMany(locale string, cards []json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, card := range cards {
		id := contentID(card)
		if id == "" {
			continue
		}
		s.cards[cardKey{locale: locale, id: id}] = card
	}
	CacheEntries.Set(float64(len(s.cards)))
}

// Len returns the number of indexed cards.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

func contentID(card json.RawMessage) string {
	var env struct {
		Content struct {
			ID string `json:"id"`
		} `json:"content"`
	}
	if err := json.Unmarshal(card, &env); err != nil {
		return ""
	}
	return env.Content.ID
}
