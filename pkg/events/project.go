package events

import "encoding/json"

// Event is the flat projection of one raw card.
type Event struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Format        string   `json:"format"`
	FormatEnglish string   `json:"format_english"`
	Link          string   `json:"link"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	FilterIDs     []string `json:"filter_ids"`
}

// cardEnvelope captures the only structural assumption made about a card:
// a nested "content" object. Nested objects are pointers so an explicit
// null degrades to the same defaults as an absent field.
type cardEnvelope struct {
	Content *cardContent `json:"content"`
}

type cardContent struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Format            string        `json:"format"`
	FormatEnglishName string        `json:"formatEnglishName"`
	FilterIDs         []string      `json:"filterIds"`
	Location          *cardLocation `json:"location"`
	EventDates        *cardDates    `json:"eventDates"`
	Action            *cardAction   `json:"action"`
}

type cardLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type cardDates struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type cardAction struct {
	Href string `json:"href"`
}

// ParseCard projects one raw card into a flat Event. Missing, null, or
// structurally unexpected fields never fail; they degrade to empty strings
// and an empty filter id list.
func ParseCard(card json.RawMessage) Event {
	var env cardEnvelope
	// A card that cannot be decoded at all projects to all defaults.
	_ = json.Unmarshal(card, &env)

	ev := Event{FilterIDs: []string{}}
	content := env.Content
	if content == nil {
		return ev
	}

	ev.ID = content.ID
	ev.Name = content.Name
	ev.Title = content.Title
	ev.Description = content.Description
	ev.Format = content.Format
	ev.FormatEnglish = content.FormatEnglishName
	if content.FilterIDs != nil {
		ev.FilterIDs = content.FilterIDs
	}
	if loc := content.Location; loc != nil {
		ev.City = loc.City
		ev.State = loc.State
		ev.Country = loc.Country
	}
	if dates := content.EventDates; dates != nil {
		ev.StartDate = dates.StartDate
		ev.EndDate = dates.EndDate
	}
	if action := content.Action; action != nil {
		ev.Link = action.Href
	}
	return ev
}

// rawContent returns the untouched "content" object of a card, or an empty
// object when the card has none.
func rawContent(card json.RawMessage) json.RawMessage {
	var env struct {
		Content json.RawMessage `json:"content"`
	}
	_ = json.Unmarshal(card, &env)
	if len(env.Content) == 0 || string(env.Content) == "null" {
		return json.RawMessage(`{}`)
	}
	return env.Content
}
