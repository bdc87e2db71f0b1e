package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/pkg/errors"
)

func newTestClient(baseURL, apiKey string) *client {
	logger, _ := zap.NewDevelopment()
	cfg := &config.TranslateConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		RequestTimeout: 5,
	}
	return NewTranslateClient(cfg, logger).(*client)
}

func TestClient_Translate(t *testing.T) {
	t.Run("successful translation", func(t *testing.T) {
		var gotSource, gotTarget string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotSource = r.Form.Get("source")
			gotTarget = r.Form.Get("target")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"translations": []map[string]string{
						{"translatedText": "ערב ג'אז"},
					},
				},
			})
		}))
		defer server.Close()

		c := newTestClient(server.URL, "test_key")

		result, err := c.Translate(context.Background(), "Jazz Night", "en", "he")
		require.NoError(t, err)
		assert.Equal(t, "ערב ג'אז", result)
		assert.Equal(t, "en", gotSource)
		// Google uses the legacy "iw" code for Hebrew
		assert.Equal(t, "iw", gotTarget)
	})

	t.Run("same source and target skips the API", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("API must not be called")
		}))
		defer server.Close()

		c := newTestClient(server.URL, "test_key")

		result, err := c.Translate(context.Background(), "Jazz Night", "en", "en")
		require.NoError(t, err)
		assert.Equal(t, "Jazz Night", result)
	})

	t.Run("missing API key", func(t *testing.T) {
		c := newTestClient("http://localhost", "")

		_, err := c.Translate(context.Background(), "Jazz Night", "en", "ru")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeConfiguration))
	})

	t.Run("unsupported language", func(t *testing.T) {
		c := newTestClient("http://localhost", "test_key")

		_, err := c.Translate(context.Background(), "Jazz Night", "en", "fr")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeValidation))
	})

	t.Run("empty text", func(t *testing.T) {
		c := newTestClient("http://localhost", "test_key")

		_, err := c.Translate(context.Background(), "   ", "en", "ru")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeValidation))
	})

	t.Run("upstream error maps to external error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		c := newTestClient(server.URL, "test_key")

		_, err := c.Translate(context.Background(), "Jazz Night", "en", "ru")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeExternal))
	})
}
