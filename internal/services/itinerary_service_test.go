package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"globehopper/internal/models/db_models"
	"globehopper/internal/models/response_models"
)

func TestEventsForDaySortedByTimeStable(t *testing.T) {
	state, _ := newTestState(t)
	itinerary := NewItineraryService(state)

	events := []db_models.ItineraryEvent{
		{Date: "2024-06-01", Time: "18:00", Activity: "Dinner"},
		{Date: "2024-06-01", Time: "09:00", Activity: "Museum"},
		{Date: "2024-06-01", Time: "09:00", Activity: "Coffee"},
		{Date: "2024-06-02", Time: "07:00", Activity: "Train"},
		{Date: "2024-06-01", Time: "12:30", Activity: "Lunch"},
	}
	require.NoError(t, itinerary.ReplaceAll(context.Background(), events))

	day := itinerary.EventsForDay("2024-06-01")
	require.Len(t, day, 4)
	assert.Equal(t, "Museum", day[0].Activity, "09:00 entries keep original order")
	assert.Equal(t, "Coffee", day[1].Activity)
	assert.Equal(t, "Lunch", day[2].Activity)
	assert.Equal(t, "Dinner", day[3].Activity)

	assert.Empty(t, itinerary.EventsForDay("2024-06-05"))
}

func TestReplaceAllIsWholesale(t *testing.T) {
	state, _ := newTestState(t)
	itinerary := NewItineraryService(state)

	first := []db_models.ItineraryEvent{
		{Date: "2024-06-01", Time: "09:00", Activity: "Old city walk"},
	}
	require.NoError(t, itinerary.ReplaceAll(context.Background(), first))

	second := []db_models.ItineraryEvent{
		{Date: "2024-07-10", Time: "10:00", Activity: "New trip"},
	}
	require.NoError(t, itinerary.ReplaceAll(context.Background(), second))

	// No stale events from the previous destination set linger.
	assert.Empty(t, itinerary.EventsForDay("2024-06-01"))
	assert.Len(t, itinerary.EventsForDay("2024-07-10"), 1)
}

func TestReplaceAllIdempotent(t *testing.T) {
	state, _ := newTestState(t)
	itinerary := NewItineraryService(state)

	events := []db_models.ItineraryEvent{
		{Date: "2024-06-01", Time: "09:00", Activity: "Walk"},
		{Date: "2024-06-01", Time: "11:00", Activity: "Gallery"},
	}
	require.NoError(t, itinerary.ReplaceAll(context.Background(), events))
	once := itinerary.EventsForDay("2024-06-01")

	require.NoError(t, itinerary.ReplaceAll(context.Background(), events))
	twice := itinerary.EventsForDay("2024-06-01")

	assert.Equal(t, once, twice)
}

func TestAccommodationForDay(t *testing.T) {
	state, _ := newTestState(t)
	itinerary := NewItineraryService(state)

	assert.Nil(t, itinerary.AccommodationForDay("2024-06-01"))

	acc := db_models.Accommodation{Name: "Hotel Sanders", Lat: 55.68, Lon: 12.58}
	require.NoError(t, itinerary.SetAccommodation(context.Background(), "2024-06-01", acc))

	got := itinerary.AccommodationForDay("2024-06-01")
	require.NotNil(t, got)
	assert.Equal(t, "Hotel Sanders", got.Name)
	assert.Nil(t, itinerary.AccommodationForDay("2024-06-02"), "exact date key lookup only")

	require.NoError(t, itinerary.RemoveAccommodation(context.Background(), "2024-06-01"))
	assert.Nil(t, itinerary.AccommodationForDay("2024-06-01"))
}

func TestDayViewDirectionsURL(t *testing.T) {
	state, _ := newTestState(t)
	itinerary := NewItineraryService(state)

	require.NoError(t, itinerary.ReplaceAll(context.Background(), []db_models.ItineraryEvent{
		{Date: "2024-06-01", Time: "09:00", Activity: "A", Lat: 55.1, Lon: 12.1},
		{Date: "2024-06-01", Time: "12:00", Activity: "B", Lat: 55.2, Lon: 12.2},
	}))
	require.NoError(t, itinerary.SetAccommodation(context.Background(), "2024-06-01",
		db_models.Accommodation{Name: "Hotel", Lat: 55.0, Lon: 12.0}))

	view := itinerary.DayView("2024-06-01")
	require.NotNil(t, view.Accommodation)
	assert.Contains(t, view.DirectionsURL, "origin=55%2C12")
	assert.Contains(t, view.DirectionsURL, "destination=55.2%2C12.2")
	assert.Contains(t, view.DirectionsURL, "waypoints=55.1%2C12.1")

	empty := itinerary.DayView("2024-06-09")
	assert.Empty(t, empty.DirectionsURL)
	assert.Empty(t, empty.Events)
}

func TestApplyGenerationMergesWholesale(t *testing.T) {
	state, _ := newTestState(t)
	itinerary := NewItineraryService(state)

	result := &response_models.GenerationResult{
		Markdown: "# Copenhagen Guide",
		Events: []db_models.ItineraryEvent{
			{Date: "2024-06-01", Time: "10:00", Activity: "Nyhavn"},
		},
		Sources: []db_models.Source{{Title: "visitcopenhagen.com", URI: "https://visitcopenhagen.com"}},
	}
	require.NoError(t, itinerary.ApplyGeneration(context.Background(), result))

	guide := itinerary.Guide()
	assert.Equal(t, "# Copenhagen Guide", guide.Markdown)
	require.Len(t, guide.Sources, 1)
	assert.Len(t, itinerary.EventsForDay("2024-06-01"), 1)
}
