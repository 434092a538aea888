package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"sync/atomic"
	"time"

	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
)

// PlacesAdapter оборачивает внешний геосервис подсказок адресов.
// Сервис поднимается асинхронно, поэтому готовность опрашивается
// с интервалом до истечения таймаута, после чего опрос прекращается
// навсегда и адаптер остается в неготовом состоянии.
type PlacesAdapter struct {
	client       *http.Client
	baseURL      string
	apiKey       string
	country      string
	initTimeout  time.Duration
	pollInterval time.Duration
	ready        atomic.Bool
	logger       out.LoggerPort
}

func NewPlacesAdapter(cfg *config.Config, logger out.LoggerPort) *PlacesAdapter {
	adapter := &PlacesAdapter{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      cfg.Places.URL,
		apiKey:       cfg.Places.APIKey,
		country:      cfg.Places.Country,
		initTimeout:  cfg.Places.InitTimeout,
		pollInterval: cfg.Places.PollInterval,
		logger:       logger,
	}

	go adapter.waitReady()

	return adapter
}

func (a *PlacesAdapter) Ready() bool {
	return a.ready.Load()
}

// Ограниченный опрос готовности: при недоступном геосервисе
// приложение работает дальше, просто без подсказок адреса
func (a *PlacesAdapter) waitReady() {
	deadline := time.Now().Add(a.initTimeout)

	for time.Now().Before(deadline) {
		if a.ping() {
			a.ready.Store(true)
			a.logger.Info("places.ready", out.LogFields{})
			return
		}
		time.Sleep(a.pollInterval)
	}

	a.logger.Warn("places.init_timeout", out.LogFields{
		"timeout": a.initTimeout.String(),
	})
}

func (a *PlacesAdapter) ping() bool {
	ctx, cancel := context.WithTimeout(context.Background(), a.pollInterval)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (a *PlacesAdapter) Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error) {
	query := nurl.Values{}
	query.Add("input", input)
	query.Add("country", a.country)

	url := fmt.Sprintf("%s/autocomplete?%s", a.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("places.autocomplete.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("places.autocomplete.failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		Predictions []domain.PlacePrediction `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Predictions, nil
}

func (a *PlacesAdapter) ResolvePlace(ctx context.Context, placeID string) (*domain.ResolvedPlace, error) {
	a.logger.Debug("places.resolve", out.LogFields{
		"placeId": placeID,
	})

	query := nurl.Values{}
	query.Add("place_id", placeID)

	url := fmt.Sprintf("%s/details?%s", a.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("places.resolve.failed", out.LogFields{
			"placeId": placeID,
			"error":   err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("places.resolve.failed", out.LogFields{
			"placeId": placeID,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var place domain.ResolvedPlace
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, err
	}
	place.PlaceID = placeID

	return &place, nil
}
