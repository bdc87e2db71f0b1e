package translate

import (
	"context"
	"encoding/json"
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
	apiKey     string
	logger     *zap.Logger
}

// NewTranslateClient создает новый клиент для Google Translate API
func NewTranslateClient(cfg *config.TranslateConfig, logger *zap.Logger) repository.TranslatorRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate переводит текст между поддерживаемыми языками
func (c *client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.Validation("Text for translation cannot be empty")
	}
	if !langs.IsSupported(sourceLang) || !langs.IsSupported(targetLang) {
		return "", errors.ErrUnsupportedLanguage
	}
	if sourceLang == targetLang {
		return text, nil
	}
	if c.apiKey == "" {
		return "", errors.Configuration("Translation API key is not configured")
	}

	form := url.Values{}
	form.Set("q", text)
	form.Set("source", langs.TranslatorCode(sourceLang))
	form.Set("target", langs.TranslatorCode(targetLang))
	form.Set("format", "text")
	form.Set("key", c.apiKey)

	endpoint := c.baseURL + "/language/translate/v2"

	c.logger.Debug("Calling translation API",
		zap.String("source", sourceLang),
		zap.String("target", targetLang),
		zap.Int("text_len", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.External("Failed to create translation request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Translation request failed", zap.Error(err))
		return "", errors.External("Translation service is unavailable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Translation API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", errors.External("Translation service returned status %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Failed to decode translation response", zap.Error(err))
		return "", errors.External("Failed to decode translation response: %v", err)
	}

	if len(parsed.Data.Translations) == 0 {
		return "", errors.External("Translation service returned no translations")
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}
