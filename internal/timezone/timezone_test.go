package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())

	fallback := Location("Mars/Olympus")
	assert.Contains(t, []string{DefaultTimezone, "UTC"}, fallback.String())
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 42, 7, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-21", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("21/10/2026", time.UTC)
	assert.Error(t, err)
}
