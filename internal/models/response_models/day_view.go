package response_models

import "globehopper/internal/models/db_models"

// TripDay is one entry of the day selector.
type TripDay struct {
	ISO     string `json:"iso"`
	Weekday string `json:"weekday"`
	DayNum  int    `json:"day_num"`
}

// DayView joins everything the day screen needs for one calendar day.
type DayView struct {
	Date          string                     `json:"date"`
	Events        []db_models.ItineraryEvent `json:"events"`
	Accommodation *db_models.Accommodation   `json:"accommodation,omitempty"`
	DirectionsURL string                     `json:"directions_url,omitempty"`
}

type TripResponse struct {
	Details db_models.TripConfiguration `json:"details"`
	Notes   string                      `json:"notes"`
	Days    []TripDay                   `json:"days"`
}

type RateResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

type LedgerResponse struct {
	Entries  []db_models.LedgerEntry `json:"entries"`
	Total    float64                 `json:"total"`
	Currency string                  `json:"currency"`
}

type KeyStatusResponse struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source,omitempty"`
}
