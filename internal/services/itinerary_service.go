package services

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"globehopper/internal/models/db_models"
	"globehopper/internal/models/response_models"
)

type ItineraryServiceInterface interface {
	ReplaceAll(ctx context.Context, events []db_models.ItineraryEvent) error
	ApplyGeneration(ctx context.Context, result *response_models.GenerationResult) error
	EventsForDay(date string) []db_models.ItineraryEvent
	AccommodationForDay(date string) *db_models.Accommodation
	SetAccommodation(ctx context.Context, date string, acc db_models.Accommodation) error
	RemoveAccommodation(ctx context.Context, date string) error
	DayView(date string) response_models.DayView
	Guide() response_models.GuideResponse
}

type ItineraryService struct {
	state StateServiceInterface
}

func NewItineraryService(state StateServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{state: state}
}

// ReplaceAll swaps the entire event collection. Never a partial merge, so no
// stale events from a previous destination set survive a new generation.
func (i *ItineraryService) ReplaceAll(ctx context.Context, events []db_models.ItineraryEvent) error {
	replacement := append([]db_models.ItineraryEvent(nil), events...)
	if replacement == nil {
		replacement = []db_models.ItineraryEvent{}
	}
	return i.state.Update(ctx, func(s *db_models.AppState) {
		s.Itinerary = replacement
	})
}

// ApplyGeneration merges one successful generation wholesale: events, guide
// text and citations in a single snapshot write. Failed generations never
// reach this point, so prior state stays intact on any error upstream.
func (i *ItineraryService) ApplyGeneration(ctx context.Context, result *response_models.GenerationResult) error {
	events := append([]db_models.ItineraryEvent(nil), result.Events...)
	if events == nil {
		events = []db_models.ItineraryEvent{}
	}
	sources := append([]db_models.Source(nil), result.Sources...)
	if sources == nil {
		sources = []db_models.Source{}
	}
	return i.state.Update(ctx, func(s *db_models.AppState) {
		s.Itinerary = events
		s.AIMarkdown = result.Markdown
		s.Sources = sources
	})
}

// EventsForDay returns the day's events ordered by time string ascending.
// Times are zero-padded HH:MM so lexicographic order is chronological; ties
// keep their original array order.
func (i *ItineraryService) EventsForDay(date string) []db_models.ItineraryEvent {
	events := []db_models.ItineraryEvent{}
	i.state.View(func(s *db_models.AppState) {
		for _, ev := range s.Itinerary {
			if ev.Date == date {
				events = append(events, ev)
			}
		}
	})
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Time < events[b].Time
	})
	return events
}

func (i *ItineraryService) AccommodationForDay(date string) *db_models.Accommodation {
	var acc *db_models.Accommodation
	i.state.View(func(s *db_models.AppState) {
		if a, ok := s.Accommodations[date]; ok {
			acc = &a
		}
	})
	return acc
}

func (i *ItineraryService) SetAccommodation(ctx context.Context, date string, acc db_models.Accommodation) error {
	return i.state.Update(ctx, func(s *db_models.AppState) {
		s.Accommodations[date] = acc
	})
}

func (i *ItineraryService) RemoveAccommodation(ctx context.Context, date string) error {
	return i.state.Update(ctx, func(s *db_models.AppState) {
		delete(s.Accommodations, date)
	})
}

func (i *ItineraryService) DayView(date string) response_models.DayView {
	events := i.EventsForDay(date)
	acc := i.AccommodationForDay(date)
	return response_models.DayView{
		Date:          date,
		Events:        events,
		Accommodation: acc,
		DirectionsURL: directionsURL(events, acc),
	}
}

func (i *ItineraryService) Guide() response_models.GuideResponse {
	var guide response_models.GuideResponse
	i.state.View(func(s *db_models.AppState) {
		guide.Markdown = s.AIMarkdown
		guide.Sources = append([]db_models.Source(nil), s.Sources...)
	})
	if guide.Sources == nil {
		guide.Sources = []db_models.Source{}
	}
	return guide
}

// directionsURL builds a Google Maps directions link for the day: the
// accommodation (when set) is the origin, the day's events are waypoints.
func directionsURL(events []db_models.ItineraryEvent, acc *db_models.Accommodation) string {
	if len(events) == 0 && acc == nil {
		return ""
	}

	waypoints := make([]string, 0, len(events))
	for _, ev := range events {
		waypoints = append(waypoints, fmt.Sprintf("%v,%v", ev.Lat, ev.Lon))
	}

	var origin string
	if acc != nil {
		origin = fmt.Sprintf("%v,%v", acc.Lat, acc.Lon)
	} else {
		origin = waypoints[0]
		waypoints = waypoints[1:]
	}

	destination := origin
	if len(waypoints) > 0 {
		destination = waypoints[len(waypoints)-1]
		waypoints = waypoints[:len(waypoints)-1]
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin)
	q.Set("destination", destination)
	if len(waypoints) > 0 {
		q.Set("waypoints", strings.Join(waypoints, "|"))
	}
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
