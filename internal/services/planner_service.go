package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"globehopper/internal/models/db_models"
	"globehopper/internal/models/response_models"
	"globehopper/pkg/utils"
)

// PlannerConfig carries the provider selection and the credential sourced
// from process configuration. An interactively stored key takes precedence
// over EnvKey.
type PlannerConfig struct {
	Provider string
	Model    string
	EnvKey   string
}

type PlannerServiceInterface interface {
	Generate(ctx context.Context, mode utils.GenerationMode) (*response_models.GenerationResult, error)
	SetAPIKey(ctx context.Context, key string) error
	ClearAPIKey(ctx context.Context) error
	KeyStatus() response_models.KeyStatusResponse
}

type PlannerService struct {
	trip      TripServiceInterface
	itinerary ItineraryServiceInterface
	state     StateServiceInterface
	client    utils.PlannerClientInterface
	config    PlannerConfig
	inFlight  atomic.Bool
}

func NewPlannerService(
	trip TripServiceInterface,
	itinerary ItineraryServiceInterface,
	state StateServiceInterface,
	client utils.PlannerClientInterface,
	config PlannerConfig,
) PlannerServiceInterface {
	return &PlannerService{
		trip:      trip,
		itinerary: itinerary,
		state:     state,
		client:    client,
		config:    config,
	}
}

// Generate runs the whole pipeline for one user action: validate, build the
// prompt, call the model once, normalize, and merge on full success only.
// Overlapping calls are refused rather than interleaved.
func (p *PlannerService) Generate(ctx context.Context, mode utils.GenerationMode) (*response_models.GenerationResult, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, utils.ErrPlanInFlight
	}
	defer p.inFlight.Store(false)

	if err := p.trip.ValidateForGeneration(); err != nil {
		return nil, err
	}
	if mode != utils.ModeGrounded {
		mode = utils.ModeStrict
	}

	cfg, notes := p.trip.Configuration()
	prompt := BuildPrompt(cfg, notes, mode)

	out, err := p.client.Generate(ctx, prompt, mode, p.resolveKey())
	if err != nil {
		if errors.Is(err, utils.ErrAPIKeyInvalid) {
			// Discard the rejected key so the frontend re-prompts.
			if clearErr := p.ClearAPIKey(ctx); clearErr != nil {
				log.WithError(clearErr).Warn("could not clear rejected api key")
			}
		}
		return nil, err
	}

	result, err := normalizeGeneration(out.Text, out.Sources)
	if err != nil {
		return nil, err
	}

	if err := p.itinerary.ApplyGeneration(ctx, result); err != nil {
		return nil, err
	}

	log.WithField("events", len(result.Events)).Info("itinerary generated")
	return result, nil
}

// BuildPrompt is a pure function of the trip configuration and notes. It
// embeds every destination name and both dates verbatim, plus the output
// contract the normalizer expects.
func BuildPrompt(cfg db_models.TripConfiguration, notes string, mode utils.GenerationMode) string {
	names := make([]string, 0, len(cfg.Destinations))
	for _, d := range cfg.Destinations {
		if strings.TrimSpace(d.Name) != "" {
			names = append(names, d.Name)
		}
	}
	destinations := strings.Join(names, ", ")
	dayCount := len(utils.DaysBetween(cfg.StartDate, cfg.EndDate))

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed %d-day travel itinerary for %s starting from %s and ending on %s.\n",
		dayCount, destinations, cfg.StartDate, cfg.EndDate)
	fmt.Fprintf(&b, "Origin: %s.\n", cfg.Origin)
	fmt.Fprintf(&b, "Preferences: %q.\n\n", notes)

	if mode == utils.ModeGrounded {
		b.WriteString("Consult current web sources for up-to-date events, opening hours and venues.\n\n")
	}

	b.WriteString(`You MUST return the response as a JSON object with this exact structure:
{
  "markdown": "A beautiful, long-form travel guide in Markdown with headers, bullet points, and tips.",
  "events": [
    {
      "date": "YYYY-MM-DD",
      "time": "HH:MM",
      "activity": "Name of the activity",
      "location": "Specific location/address",
      "lat": 0.0,
      "lon": 0.0,
      "mapLink": "Google Maps URL"
    }
  ]
}`)
	return b.String()
}

// resolveKey applies the precedence rule: interactively stored key first,
// then the environment-provided one.
func (p *PlannerService) resolveKey() string {
	var stored string
	p.state.View(func(s *db_models.AppState) {
		stored = s.APIKey
	})
	if !utils.IsPlaceholderKey(stored) {
		return stored
	}
	return p.config.EnvKey
}

func (p *PlannerService) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return utils.ErrInvalidInput
	}
	return p.state.Update(ctx, func(s *db_models.AppState) {
		s.APIKey = key
	})
}

func (p *PlannerService) ClearAPIKey(ctx context.Context) error {
	return p.state.Update(ctx, func(s *db_models.AppState) {
		s.APIKey = ""
	})
}

func (p *PlannerService) KeyStatus() response_models.KeyStatusResponse {
	var stored string
	p.state.View(func(s *db_models.AppState) {
		stored = s.APIKey
	})
	if !utils.IsPlaceholderKey(stored) {
		return response_models.KeyStatusResponse{Configured: true, Source: "user"}
	}
	if !utils.IsPlaceholderKey(p.config.EnvKey) {
		return response_models.KeyStatusResponse{Configured: true, Source: "environment"}
	}
	return response_models.KeyStatusResponse{}
}

type rawEvent struct {
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Activity string          `json:"activity"`
	Location string          `json:"location"`
	Lat      json.RawMessage `json:"lat"`
	Lon      json.RawMessage `json:"lon"`
	MapLink  string          `json:"mapLink"`
}

type rawGeneration struct {
	Markdown string     `json:"markdown"`
	Events   []rawEvent `json:"events"`
}

// normalizeGeneration is the parse-then-validate boundary: the raw text is
// reduced to one balanced JSON object, parsed into a loose intermediate, and
// projected field by field into the typed result. Malformed content maps to
// ErrMalformedAIOutput, never a raw parse error.
func normalizeGeneration(text string, sources []db_models.Source) (*response_models.GenerationResult, error) {
	span, err := utils.ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var raw rawGeneration
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIOutput, err)
	}

	// Missing fields default rather than fail: a well-formed object with
	// no markdown or events is an empty plan, not a malformed one.
	events := make([]db_models.ItineraryEvent, 0, len(raw.Events))
	for _, ev := range raw.Events {
		events = append(events, db_models.ItineraryEvent{
			Date:     ev.Date,
			Time:     ev.Time,
			Activity: ev.Activity,
			Location: ev.Location,
			Lat:      coerceCoord(ev.Lat),
			Lon:      coerceCoord(ev.Lon),
			MapLink:  ev.MapLink,
		})
	}

	if sources == nil {
		sources = []db_models.Source{}
	}
	return &response_models.GenerationResult{
		Markdown: raw.Markdown,
		Events:   events,
		Sources:  sources,
	}, nil
}

// coerceCoord accepts a JSON number or a numeric string, else 0. The zero
// fallback is deliberately lossy: the event still shows in the timeline, it
// just cannot be placed on a map.
func coerceCoord(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return 0
}
