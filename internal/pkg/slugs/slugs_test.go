package slugs_test

import (
	"testing"
	"time"

	"github.com/events-directory/internal/pkg/slugs"
	"github.com/stretchr/testify/assert"
)

func TestForName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces to hyphens", "Symphony Hall", "symphony-hall"},
		{"lowercased", "HaBima Theatre", "habima-theatre"},
		{"collapses extra spaces", "Old  Port", "old-port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugs.ForName(tt.input))
		})
	}
}

func TestForName_Idempotent(t *testing.T) {
	for _, name := range []string{"Symphony Hall", "Gesher Theatre", "beit-ha-ir"} {
		once := slugs.ForName(name)
		assert.Equal(t, once, slugs.ForName(once))
	}
}

func TestForEvent(t *testing.T) {
	start := time.Date(2025, 6, 14, 20, 30, 0, 0, time.UTC)

	got := slugs.ForEvent("Jazz Night", start)
	assert.Equal(t, "jazz-night-2025-06-14-20-30", got)

	t.Run("date change produces different slug", func(t *testing.T) {
		other := slugs.ForEvent("Jazz Night", start.Add(time.Hour))
		assert.NotEqual(t, got, other)
	})

	t.Run("name change produces different slug", func(t *testing.T) {
		other := slugs.ForEvent("Blues Night", start)
		assert.NotEqual(t, got, other)
	})
}
