package request_models

import "globehopper/internal/models/db_models"

type UpdateTripRequest struct {
	Origin       string                  `json:"origin"`
	Destinations []db_models.Destination `json:"destinations"`
	StartDate    string                  `json:"startDate"`
	EndDate      string                  `json:"endDate"`
	DestCurrency string                  `json:"destCurrency"`
	HomeCurrency string                  `json:"homeCurrency"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type GenerateRequest struct {
	// Mode selects "strict" (default) or "grounded" generation.
	Mode string `json:"mode"`
}
