package dates_test

import (
	"testing"
	"time"

	"github.com/events-directory/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jerusalem(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)
	return loc
}

func TestParseLocal(t *testing.T) {
	loc := jerusalem(t)

	t.Run("date with time converted to utc", func(t *testing.T) {
		got, err := dates.ParseLocal("2025-06-14 20:30", true, loc)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, got.Location())
		// June: Israel daylight time, UTC+3
		assert.Equal(t, time.Date(2025, 6, 14, 17, 30, 0, 0, time.UTC), got)
	})

	t.Run("end date without time gets 23:59", func(t *testing.T) {
		got, err := dates.ParseLocal("2025-06-14", false, loc)
		require.NoError(t, err)

		local := got.In(loc)
		assert.Equal(t, 23, local.Hour())
		assert.Equal(t, 59, local.Minute())
	})

	t.Run("start date without time stays at midnight", func(t *testing.T) {
		got, err := dates.ParseLocal("2025-06-14", true, loc)
		require.NoError(t, err)

		local := got.In(loc)
		assert.Equal(t, 0, local.Hour())
		assert.Equal(t, 0, local.Minute())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := dates.ParseLocal("14/06/2025", true, loc)
		assert.Error(t, err)
	})
}

func TestToLocal(t *testing.T) {
	loc := jerusalem(t)

	utc := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	local := dates.ToLocal(utc, loc)

	// January: Israel standard time, UTC+2
	assert.Equal(t, 14, local.Hour())
}
