package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func card(id, title string) json.RawMessage {
	return json.RawMessage(`{"content":{"id":"` + id + `","title":"` + title + `"}}`)
}

func TestStore_GetMiss(t *testing.T) {
	s := New()

	if _, ok := s.Get("de-de", "evt-1"); ok {
		t.Error("Expected miss on empty store")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStore_PutManyAndGet(t *testing.T) {
	s := New()
	s.PutMany("de-de", []json.RawMessage{
		card("evt-1", "First"),
		card("evt-2", "Second"),
	})

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}

	got, ok := s.Get("de-de", "evt-1")
	if !ok {
		t.Fatal("Expected hit for evt-1")
	}
	if !strings.Contains(string(got), "First") {
		t.Errorf("Get returned %s", got)
	}
}

func TestStore_PutManyIdempotent(t *testing.T) {
	s := New()
	cards := []json.RawMessage{card("evt-1", "Original")}

	s.PutMany("de-de", cards)
	s.PutMany("de-de", cards)

	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 (indexing twice leaves one entry)", s.Len())
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	s := New()
	s.PutMany("de-de", []json.RawMessage{card("evt-1", "Old")})
	s.PutMany("de-de", []json.RawMessage{card("evt-1", "New")})

	got, ok := s.Get("de-de", "evt-1")
	if !ok {
		t.Fatal("Expected hit")
	}
	if !strings.Contains(string(got), "New") {
		t.Errorf("Expected most recent value, got %s", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStore_SkipsCardsWithoutID(t *testing.T) {
	s := New()
	s.PutMany("de-de", []json.RawMessage{
		json.RawMessage(`{"content":{"title":"no id"}}`),
		json.RawMessage(`{"content":{"id":"","title":"empty id"}}`),
		json.RawMessage(`{"title":"no content"}`),
		json.RawMessage(`{broken`),
	})

	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 (cards without id are a no-op)", s.Len())
	}
}

func TestStore_LocaleScopesKeys(t *testing.T) {
	s := New()
	s.PutMany("de-de", []json.RawMessage{card("evt-1", "Deutsch")})
	s.PutMany("en-us", []json.RawMessage{card("evt-1", "English")})

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2 (same id under two locales)", s.Len())
	}

	got, ok := s.Get("en-us", "evt-1")
	if !ok || !strings.Contains(string(got), "English") {
		t.Errorf("Get(en-us) = %s, ok=%v", got, ok)
	}
	if _, ok := s.Get("fr-fr", "evt-1"); ok {
		t.Error("Expected miss for unseen locale")
	}
}
