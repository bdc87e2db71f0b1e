package geonames

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
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	country    string
	logger     *zap.Logger
}

// NewGeoNamesClient создает новый клиент для справочника GeoNames
func NewGeoNamesClient(cfg *config.GeoNamesConfig, logger *zap.Logger) repository.GeoDirectoryRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		country:  cfg.Country,
		logger:   logger,
	}
}

type geoname struct {
	Name           string `json:"name"`
	CountryCode    string `json:"countryCode"`
	AlternateNames []struct {
		Lang string `json:"lang"`
		Name string `json:"name"`
	} `json:"alternateNames"`
}

type searchResponse struct {
	Geonames []geoname `json:"geonames"`
	Status   *struct {
		Message string `json:"message"`
		Value   int    `json:"value"`
	} `json:"status"`
}

// LookupCity ищет город по английскому названию и возвращает его каноническое
// имя с переводами. Если точного совпадения нет, нечёткий поиск используется
// для подсказки при опечатке.
func (c *client) LookupCity(ctx context.Context, nameEn string) (*repository.CityNames, error) {
	if c.username == "" {
		return nil, errors.Configuration("GeoNames username is not configured")
	}

	exact, err := c.search(ctx, nameEn, true)
	if err != nil {
		return nil, err
	}
	if len(exact.Geonames) > 0 {
		return c.toCityNames(exact.Geonames[0]), nil
	}

	// Точного совпадения нет: пробуем нечёткий поиск ради подсказки
	fuzzy, err := c.search(ctx, nameEn, false)
	if err != nil {
		return nil, err
	}
	if len(fuzzy.Geonames) > 0 {
		return nil, errors.NotFound(
			"City %q not found. Did you mean %q?", nameEn, fuzzy.Geonames[0].Name)
	}

	return nil, errors.NotFound("City %q not found in country %s", nameEn, c.country)
}

func (c *client) search(ctx context.Context, name string, exact bool) (*searchResponse, error) {
	params := url.Values{}
	if exact {
		params.Set("name_equals", name)
	} else {
		params.Set("name", name)
		params.Set("fuzzy", "0.8")
	}
	params.Set("country", c.country)
	params.Set("featureClass", "P")
	params.Set("maxRows", "1")
	params.Set("style", "FULL")
	params.Set("username", c.username)

	endpoint := fmt.Sprintf("%s/searchJSON?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling GeoNames API",
		zap.String("name", name),
		zap.Bool("exact", exact))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.External("Failed to create GeoNames request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("GeoNames request failed", zap.Error(err))
		return nil, errors.External("GeoNames service is unavailable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("GeoNames API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.External("GeoNames service returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Failed to decode GeoNames response", zap.Error(err))
		return nil, errors.External("Failed to decode GeoNames response: %v", err)
	}

	// GeoNames сообщает об ошибках статусным объектом при HTTP 200
	if parsed.Status != nil {
		return nil, errors.External("GeoNames error: %s", parsed.Status.Message)
	}

	return &parsed, nil
}

func (c *client) toCityNames(g geoname) *repository.CityNames {
	names := &repository.CityNames{NameEn: g.Name}
	for _, alt := range g.AlternateNames {
		switch strings.ToLower(alt.Lang) {
		case langs.RU:
			if names.NameRu == "" {
				names.NameRu = alt.Name
			}
		case langs.HE:
			if names.NameHe == "" {
				names.NameHe = alt.Name
			}
		}
	}
	return names
}
