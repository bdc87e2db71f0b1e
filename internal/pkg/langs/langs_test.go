package langs_test

import (
	"testing"

	"github.com/events-directory/internal/pkg/langs"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("empty defaults to english", func(t *testing.T) {
		assert.Equal(t, "en", langs.Resolve(""))
	})

	t.Run("supported languages pass through", func(t *testing.T) {
		for _, lang := range []string{"en", "ru", "he"} {
			assert.Equal(t, lang, langs.Resolve(lang))
		}
	})

	t.Run("unknown language rejected", func(t *testing.T) {
		assert.Equal(t, "", langs.Resolve("fr"))
		assert.Equal(t, "", langs.Resolve("EN"))
	})
}

func TestTranslatorCode(t *testing.T) {
	assert.Equal(t, "iw", langs.TranslatorCode("he"))
	assert.Equal(t, "en", langs.TranslatorCode("en"))
	assert.Equal(t, "ru", langs.TranslatorCode("ru"))
}
