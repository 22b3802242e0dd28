package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"globehopper/internal/models/db_models"
	"globehopper/pkg/utils"
)

type fakePlannerClient struct {
	out     *utils.GenerationOutput
	err     error
	calls   int
	lastKey string
	entered chan struct{}
	release chan struct{}
}

func (f *fakePlannerClient) Generate(ctx context.Context, prompt string, mode utils.GenerationMode, apiKey string) (*utils.GenerationOutput, error) {
	f.calls++
	f.lastKey = apiKey
	if f.entered != nil {
		close(f.entered)
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func newTestPlanner(t *testing.T, client utils.PlannerClientInterface, envKey string) (PlannerServiceInterface, StateServiceInterface, ItineraryServiceInterface) {
	t.Helper()
	state, _ := newTestState(t)
	trip := NewTripService(state)
	itinerary := NewItineraryService(state)
	require.NoError(t, trip.UpdateTrip(context.Background(), testTripConfig()))

	planner := NewPlannerService(trip, itinerary, state, client,
		PlannerConfig{Provider: "gemini", EnvKey: envKey})
	return planner, state, itinerary
}

func TestBuildPromptContainsTripFieldsVerbatim(t *testing.T) {
	cfg := db_models.TripConfiguration{
		Origin:       "San Francisco",
		Destinations: []db_models.Destination{{Name: "Copenhagen"}, {Name: "Malmö"}},
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
	}
	prompt := BuildPrompt(cfg, "street food", utils.ModeStrict)

	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Copenhagen")
	assert.Contains(t, prompt, "Malmö")
	assert.Contains(t, prompt, "2024-06-01")
	assert.Contains(t, prompt, "2024-06-03")
	assert.Contains(t, prompt, "San Francisco")
	assert.Contains(t, prompt, "street food")
	assert.Contains(t, prompt, "3-day")
	assert.Contains(t, prompt, `"markdown"`)
}

func TestBuildPromptGroundedAddsSearchHint(t *testing.T) {
	cfg := testTripConfig()
	strict := BuildPrompt(cfg, "", utils.ModeStrict)
	grounded := BuildPrompt(cfg, "", utils.ModeGrounded)

	assert.NotContains(t, strict, "web sources")
	assert.Contains(t, grounded, "web sources")
}

func TestNormalizeGenerationCoercesCoordinates(t *testing.T) {
	raw := `{"markdown":"Hello","events":[{"date":"2024-06-01","time":"09:00","activity":"A","location":"L","lat":"12.5","lon":"notanumber"}]}`

	result, err := normalizeGeneration(raw, nil)
	require.NoError(t, err)

	assert.Equal(t, "Hello", result.Markdown)
	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, "2024-06-01", ev.Date)
	assert.Equal(t, 12.5, ev.Lat)
	assert.Equal(t, 0.0, ev.Lon, "failed coordinate parse falls back to zero")
	assert.NotNil(t, result.Sources)
}

func TestNormalizeGenerationFencedAndWrappedInProse(t *testing.T) {
	raw := "Here is the plan you asked for:\n```json\n{\"markdown\":\"Guide\",\"events\":[{\"date\":\"2024-06-01\",\"time\":\"10:00\",\"activity\":\"Walk\",\"location\":\"Nyhavn\",\"lat\":55.6799,\"lon\":12.5861}]}\n```\nHave a great trip!"

	result, err := normalizeGeneration(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Guide", result.Markdown)
	require.Len(t, result.Events, 1)
	assert.Equal(t, 55.6799, result.Events[0].Lat)
}

func TestNormalizeGenerationDefaultsMissingFields(t *testing.T) {
	result, err := normalizeGeneration(`{"markdown":"only text"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "only text", result.Markdown)
	assert.Empty(t, result.Events)
}

func TestNormalizeGenerationEmptyObjectYieldsEmptyPlan(t *testing.T) {
	result, err := normalizeGeneration(`{}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "", result.Markdown)
	assert.Empty(t, result.Events)
}

func TestNormalizeGenerationMalformed(t *testing.T) {
	_, err := normalizeGeneration("no json here at all", nil)
	assert.ErrorIs(t, err, utils.ErrMalformedAIOutput)

	_, err = normalizeGeneration(`{"markdown": [1,2,3]}`, nil)
	assert.ErrorIs(t, err, utils.ErrMalformedAIOutput)
}

func TestGenerateMergesOnSuccess(t *testing.T) {
	client := &fakePlannerClient{out: &utils.GenerationOutput{
		Text: `{"markdown":"# Guide","events":[{"date":"2024-06-01","time":"09:00","activity":"Walk","location":"Nyhavn","lat":55.68,"lon":12.59}]}`,
	}}
	planner, _, itinerary := newTestPlanner(t, client, "env-key")

	result, err := planner.Generate(context.Background(), utils.ModeStrict)
	require.NoError(t, err)
	assert.Equal(t, "# Guide", result.Markdown)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "env-key", client.lastKey)
	assert.Len(t, itinerary.EventsForDay("2024-06-01"), 1)
	assert.Equal(t, "# Guide", itinerary.Guide().Markdown)
}

func TestGenerateFailureLeavesPriorItineraryIntact(t *testing.T) {
	client := &fakePlannerClient{out: &utils.GenerationOutput{
		Text: `{"markdown":"# First","events":[{"date":"2024-06-01","time":"09:00","activity":"Walk"}]}`,
	}}
	planner, _, itinerary := newTestPlanner(t, client, "env-key")
	_, err := planner.Generate(context.Background(), utils.ModeStrict)
	require.NoError(t, err)

	client.out = &utils.GenerationOutput{Text: "the model rambled and returned no JSON"}
	_, err = planner.Generate(context.Background(), utils.ModeStrict)
	assert.ErrorIs(t, err, utils.ErrMalformedAIOutput)

	// The failed generation must not corrupt or partially overwrite state.
	assert.Len(t, itinerary.EventsForDay("2024-06-01"), 1)
	assert.Equal(t, "# First", itinerary.Guide().Markdown)
}

func TestGenerateRequiresCompleteTrip(t *testing.T) {
	client := &fakePlannerClient{}
	planner, state, _ := newTestPlanner(t, client, "env-key")

	require.NoError(t, state.Update(context.Background(), func(s *db_models.AppState) {
		s.TripDetails.Destinations = []db_models.Destination{{Name: ""}}
	}))

	_, err := planner.Generate(context.Background(), utils.ModeStrict)
	assert.ErrorIs(t, err, utils.ErrTripIncomplete)
	assert.Zero(t, client.calls, "no request goes out for an incomplete trip")
}

func TestGenerateStoredKeyOverridesEnvKey(t *testing.T) {
	client := &fakePlannerClient{out: &utils.GenerationOutput{Text: `{"markdown":"Guide"}`}}
	planner, _, _ := newTestPlanner(t, client, "env-key")

	require.NoError(t, planner.SetAPIKey(context.Background(), "user-key"))
	_, err := planner.Generate(context.Background(), utils.ModeStrict)
	require.NoError(t, err)
	assert.Equal(t, "user-key", client.lastKey)
}

func TestGenerateClearsRejectedStoredKey(t *testing.T) {
	client := &fakePlannerClient{err: utils.ErrAPIKeyInvalid}
	planner, state, _ := newTestPlanner(t, client, "")
	require.NoError(t, planner.SetAPIKey(context.Background(), "bad-key"))

	_, err := planner.Generate(context.Background(), utils.ModeStrict)
	assert.ErrorIs(t, err, utils.ErrAPIKeyInvalid)

	state.View(func(s *db_models.AppState) {
		assert.Empty(t, s.APIKey, "rejected credential is discarded so the user is re-prompted")
	})
	assert.False(t, planner.KeyStatus().Configured)
}

func TestGenerateRefusesOverlappingCalls(t *testing.T) {
	client := &fakePlannerClient{
		out:     &utils.GenerationOutput{Text: `{"markdown":"Guide"}`},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	planner, _, _ := newTestPlanner(t, client, "env-key")

	done := make(chan error, 1)
	go func() {
		_, err := planner.Generate(context.Background(), utils.ModeStrict)
		done <- err
	}()

	<-client.entered
	_, err := planner.Generate(context.Background(), utils.ModeStrict)
	assert.ErrorIs(t, err, utils.ErrPlanInFlight)

	close(client.release)
	require.NoError(t, <-done)
}

func TestKeyStatusSources(t *testing.T) {
	client := &fakePlannerClient{}
	planner, _, _ := newTestPlanner(t, client, "env-key")
	status := planner.KeyStatus()
	assert.True(t, status.Configured)
	assert.Equal(t, "environment", status.Source)

	require.NoError(t, planner.SetAPIKey(context.Background(), "user-key"))
	status = planner.KeyStatus()
	assert.True(t, status.Configured)
	assert.Equal(t, "user", status.Source)

	plannerNoKeys, _, _ := newTestPlanner(t, client, "")
	assert.False(t, plannerNoKeys.KeyStatus().Configured)
}
