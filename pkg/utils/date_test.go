package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), *parsed)

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = ParseDate("14/08/2026")
	assert.Error(t, err)
}

func TestMonthKeys(t *testing.T) {
	assert.Equal(t, "2026-08", MonthKey(time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)))

	start, err := ParseMonthKey("2026-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)

	next, err := NextMonthKey("2026-12")
	require.NoError(t, err)
	assert.Equal(t, "2027-01", next)

	_, err = NextMonthKey("2026-13")
	assert.Error(t, err)
}
