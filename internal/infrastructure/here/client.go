package here

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	countryCode string
	logger      *zap.Logger
}

// NewHereClient создает новый клиент для HERE Geocoding API
func NewHereClient(cfg *config.HereConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		countryCode: cfg.CountryCode,
		logger:      logger,
	}
}

type geocodeResponse struct {
	Items []struct {
		Title    string `json:"title"`
		Address  struct {
			Label string `json:"label"`
		} `json:"address"`
		Position struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"position"`
	} `json:"items"`
}

// Geocode возвращает координаты и нормализованный адрес по строке запроса
func (c *client) Geocode(ctx context.Context, query string) (*repository.GeocodeResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Validation("Geocoding query cannot be empty")
	}
	if c.apiKey == "" {
		return nil, errors.Configuration("Geocoding API key is not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("in", "countryCode:"+c.countryCode)
	params.Set("apiKey", c.apiKey)

	endpoint := fmt.Sprintf("%s/v1/geocode?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling geocoding API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.External("Failed to create geocoding request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Geocoding request failed", zap.Error(err))
		return nil, errors.External("Geocoding service is unavailable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.External("Geocoding service returned status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Failed to decode geocoding response", zap.Error(err))
		return nil, errors.External("Failed to decode geocoding response: %v", err)
	}

	if len(parsed.Items) == 0 {
		return nil, errors.NotFound("Address not found: %s", query)
	}

	item := parsed.Items[0]
	label := item.Address.Label
	if label == "" {
		label = item.Title
	}

	return &repository.GeocodeResult{
		Label:    label,
		Location: domain.NewGeoPoint(item.Position.Lng, item.Position.Lat),
	}, nil
}
