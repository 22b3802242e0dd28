package db_models

import (
	"time"
)

// Destination is a single free-text destination name.
type Destination struct {
	Name string `json:"name"`
}

// TripConfiguration holds the user's trip parameters. It always exists,
// possibly with empty destination strings; it is mutated only by direct user
// edits and never deleted.
type TripConfiguration struct {
	Origin       string        `json:"origin"`
	Destinations []Destination `json:"destinations"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	DestCurrency string        `json:"destCurrency"`
	HomeCurrency string        `json:"homeCurrency"`
}

// ItineraryEvent is one dated, timed, geo-located activity. Immutable once
// created; each successful generation replaces the whole collection. The
// event date is supposed to fall inside the trip range but that is only
// enforced by the model's instructions, so consumers tolerate strays.
type ItineraryEvent struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	MapLink  string  `json:"mapLink,omitempty"`
}

// Accommodation is the user-managed per-day lodging record, keyed by ISO
// date alongside the itinerary.
type Accommodation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type LedgerEntry struct {
	ID       string  `json:"id"`
	Note     string  `json:"note"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type ShoppingItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// Source is one web citation from a grounded generation.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// LedgerCategories are the accepted expense categories.
var LedgerCategories = []string{"Food", "Transport", "Stay", "Activities", "Misc"}

// AppState is the whole persisted application state, serialized as one
// opaque record. Every field is optional on load so older snapshots keep
// working.
type AppState struct {
	TripDetails    TripConfiguration        `json:"tripDetails"`
	UserNotes      string                   `json:"userNotes"`
	Itinerary      []ItineraryEvent         `json:"itinerary"`
	Accommodations map[string]Accommodation `json:"accommodations"`
	Ledger         []LedgerEntry            `json:"ledger"`
	ShoppingList   []ShoppingItem           `json:"shoppingList"`
	AIMarkdown     string                   `json:"aiMarkdown"`
	Sources        []Source                 `json:"sources"`
	APIKey         string                   `json:"apiKey,omitempty"`
}

// DefaultAppState is the state of a first launch.
func DefaultAppState() *AppState {
	today := time.Now()
	return &AppState{
		TripDetails: TripConfiguration{
			Origin:       "San Francisco",
			Destinations: []Destination{{Name: "Copenhagen"}},
			StartDate:    today.Format("2006-01-02"),
			EndDate:      today.AddDate(0, 0, 6).Format("2006-01-02"),
			DestCurrency: "DKK",
			HomeCurrency: "USD",
		},
		UserNotes:      "I love architecture, street food, and finding unique photo spots.",
		Itinerary:      []ItineraryEvent{},
		Accommodations: map[string]Accommodation{},
		Ledger:         []LedgerEntry{},
		ShoppingList:   []ShoppingItem{},
		Sources:        []Source{},
	}
}

// Normalize fills the zero values a partial snapshot leaves behind.
func (s *AppState) Normalize() {
	defaults := DefaultAppState()
	if s.TripDetails.Origin == "" && len(s.TripDetails.Destinations) == 0 &&
		s.TripDetails.StartDate == "" && s.TripDetails.EndDate == "" {
		s.TripDetails = defaults.TripDetails
	}
	if s.Itinerary == nil {
		s.Itinerary = []ItineraryEvent{}
	}
	if s.Accommodations == nil {
		s.Accommodations = map[string]Accommodation{}
	}
	if s.Ledger == nil {
		s.Ledger = []LedgerEntry{}
	}
	if s.ShoppingList == nil {
		s.ShoppingList = []ShoppingItem{}
	}
	if s.Sources == nil {
		s.Sources = []Source{}
	}
}
