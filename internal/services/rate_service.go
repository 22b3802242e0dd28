package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"globehopper/pkg/utils"
)

const defaultRatesBaseURL = "https://api.frankfurter.app"

// RateServiceInterface is the external currency-rate collaborator. The
// generation pipeline does not depend on it.
type RateServiceInterface interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

type RateService struct {
	client  *http.Client
	baseURL string
}

func NewRateService() RateServiceInterface {
	return &RateService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultRatesBaseURL,
	}
}

// NewRateServiceWithBase exists for tests pointing at a stub server.
func NewRateServiceWithBase(baseURL string) RateServiceInterface {
	return &RateService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

func (r *RateService) Rate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return 0, utils.ErrInvalidInput
	}
	// Equal currencies imply an identity rate, no lookup needed.
	if from == to {
		return 1, nil
	}

	q := url.Values{}
	q.Set("amount", "1")
	q.Set("from", from)
	q.Set("to", to)
	reqURL := fmt.Sprintf("%s/latest?%s", r.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrRateUnavailable, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", utils.ErrRateUnavailable, resp.StatusCode)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrRateUnavailable, err)
	}
	rate, ok := body.Rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %s", utils.ErrRateUnavailable, to)
	}
	return rate, nil
}
