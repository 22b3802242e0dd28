package response_models

import "globehopper/internal/models/db_models"

// GenerationResult is the normalized output of one generation call. It is
// transient: the planner merges it into the itinerary store and guide slot,
// and the next successful generation supersedes it entirely.
type GenerationResult struct {
	Markdown string                     `json:"markdown"`
	Events   []db_models.ItineraryEvent `json:"events"`
	Sources  []db_models.Source         `json:"sources"`
}

// GuideResponse carries the current travel guide text plus its citations.
type GuideResponse struct {
	Markdown string             `json:"markdown"`
	Sources  []db_models.Source `json:"sources"`
}
