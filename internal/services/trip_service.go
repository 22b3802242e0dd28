package services

import (
	"context"
	"strings"

	"globehopper/internal/models/db_models"
	"globehopper/internal/models/response_models"
	"globehopper/pkg/utils"
)

const maxDestinations = 5

type TripServiceInterface interface {
	GetTrip() response_models.TripResponse
	UpdateTrip(ctx context.Context, cfg db_models.TripConfiguration) error
	UpdateNotes(ctx context.Context, notes string) error
	Configuration() (db_models.TripConfiguration, string)
	TripDays() []response_models.TripDay
	ValidateForGeneration() error
}

type TripService struct {
	state StateServiceInterface
}

func NewTripService(state StateServiceInterface) TripServiceInterface {
	return &TripService{state: state}
}

func (t *TripService) Configuration() (db_models.TripConfiguration, string) {
	var cfg db_models.TripConfiguration
	var notes string
	t.state.View(func(s *db_models.AppState) {
		cfg = s.TripDetails
		cfg.Destinations = append([]db_models.Destination(nil), s.TripDetails.Destinations...)
		notes = s.UserNotes
	})
	return cfg, notes
}

func (t *TripService) GetTrip() response_models.TripResponse {
	cfg, notes := t.Configuration()
	return response_models.TripResponse{
		Details: cfg,
		Notes:   notes,
		Days:    t.TripDays(),
	}
}

func (t *TripService) UpdateTrip(ctx context.Context, cfg db_models.TripConfiguration) error {
	if len(cfg.Destinations) == 0 || len(cfg.Destinations) > maxDestinations {
		return utils.ErrInvalidInput
	}
	if cfg.StartDate != "" {
		if _, err := utils.ParseISODate(cfg.StartDate); err != nil {
			return utils.ErrInvalidInput
		}
	}
	if cfg.EndDate != "" {
		if _, err := utils.ParseISODate(cfg.EndDate); err != nil {
			return utils.ErrInvalidInput
		}
	}
	if cfg.StartDate != "" && cfg.EndDate != "" && cfg.EndDate < cfg.StartDate {
		return utils.ErrInvalidInput
	}

	return t.state.Update(ctx, func(s *db_models.AppState) {
		s.TripDetails = cfg
	})
}

func (t *TripService) UpdateNotes(ctx context.Context, notes string) error {
	return t.state.Update(ctx, func(s *db_models.AppState) {
		s.UserNotes = notes
	})
}

// TripDays derives the inclusive day sequence that drives the day selector.
func (t *TripService) TripDays() []response_models.TripDay {
	cfg, _ := t.Configuration()

	days := []response_models.TripDay{}
	for _, iso := range utils.DaysBetween(cfg.StartDate, cfg.EndDate) {
		d, err := utils.ParseISODate(iso)
		if err != nil {
			continue
		}
		days = append(days, response_models.TripDay{
			ISO:     iso,
			Weekday: d.Format("Mon"),
			DayNum:  d.Day(),
		})
	}
	return days
}

// ValidateForGeneration is the caller-level check done before any network
// call: both dates and at least one non-empty destination.
func (t *TripService) ValidateForGeneration() error {
	cfg, _ := t.Configuration()
	if cfg.StartDate == "" || cfg.EndDate == "" {
		return utils.ErrTripIncomplete
	}
	for _, d := range cfg.Destinations {
		if strings.TrimSpace(d.Name) != "" {
			return nil
		}
	}
	return utils.ErrTripIncomplete
}
