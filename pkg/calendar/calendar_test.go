package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHolidays(t *testing.T) {
	h := Holidays(2026)

	assert.True(t, h[day(2026, time.January, 1)])
	assert.True(t, h[day(2026, time.February, 2)], "primer lunes de febrero 2026")
	assert.True(t, h[day(2026, time.March, 16)], "tercer lunes de marzo 2026")
	assert.True(t, h[day(2026, time.May, 1)])
	assert.True(t, h[day(2026, time.September, 16)])
	assert.True(t, h[day(2026, time.November, 16)], "tercer lunes de noviembre 2026")
	assert.True(t, h[day(2026, time.December, 25)])
	assert.Len(t, h, 7)

	assert.False(t, h[day(2026, time.February, 9)])
}

func TestEquivalentSingleDay(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Time
		expected float64
	}{
		{name: "lunes ordinario", d: day(2026, time.August, 3), expected: 1.0},
		{name: "sábado", d: day(2026, time.August, 1), expected: 0.5},
		{name: "domingo", d: day(2026, time.August, 2), expected: 0.0},
		{name: "feriado entre semana", d: day(2026, time.September, 16), expected: 0.0},
		{name: "feriado en viernes", d: day(2026, time.December, 25), expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equivalent(tt.d, tt.d))
		})
	}
}

func TestEquivalentRange(t *testing.T) {
	// fin antes del inicio
	assert.Equal(t, 0.0, Equivalent(day(2026, time.August, 10), day(2026, time.August, 3)))

	// cruce de año: 31-dic-2025 (miércoles) cuenta, 1-ene-2026 es feriado
	assert.Equal(t, 1.0, Equivalent(day(2025, time.December, 31), day(2026, time.January, 1)))
}

func TestEquivalentMonotonic(t *testing.T) {
	start := day(2026, time.August, 1)
	prev := 0.0

	for i := 0; i < 45; i++ {
		cur := Equivalent(start, start.AddDate(0, 0, i))
		assert.GreaterOrEqual(t, cur, prev, "día %d", i)
		prev = cur
	}
}

func TestMonthTotal(t *testing.T) {
	// Agosto 2026: 21 días entre semana, 5 sábados, 5 domingos, sin feriados.
	total, err := MonthTotal("2026-08")
	require.NoError(t, err)
	assert.Equal(t, 23.5, total)

	_, err = MonthTotal("2026/08")
	assert.Error(t, err)
}

func TestElapsedInMonth(t *testing.T) {
	// 1-ago sábado + 2-ago domingo + 3-ago lunes = 1.5
	elapsed, err := ElapsedInMonth("2026-08", day(2026, time.August, 3))
	require.NoError(t, err)
	assert.Equal(t, 1.5, elapsed)

	// antes del mes
	elapsed, err = ElapsedInMonth("2026-08", day(2026, time.July, 20))
	require.NoError(t, err)
	assert.Equal(t, 0.0, elapsed)

	// después del mes se recorta al total
	elapsed, err = ElapsedInMonth("2026-08", day(2026, time.September, 10))
	require.NoError(t, err)

	total, err := MonthTotal("2026-08")
	require.NoError(t, err)
	assert.Equal(t, total, elapsed)
}

func TestRemainingInMonth(t *testing.T) {
	// 29-ago sábado (0.5) + 31-ago lunes (1.0)
	rem, err := RemainingInMonth("2026-08", day(2026, time.August, 29))
	require.NoError(t, err)
	assert.Equal(t, 1.5, rem)

	// asOf anterior al mes arranca en el inicio del mes
	rem, err = RemainingInMonth("2026-08", day(2026, time.July, 1))
	require.NoError(t, err)

	total, err := MonthTotal("2026-08")
	require.NoError(t, err)
	assert.Equal(t, total, rem)

	// después del fin de mes no queda nada
	rem, err = RemainingInMonth("2026-08", day(2026, time.September, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, rem)
}

func TestRemainingForRate(t *testing.T) {
	// octubre 2026 termina en sábado: solo queda medio día
	rem, err := RemainingInMonth("2026-10", day(2026, time.October, 31))
	require.NoError(t, err)
	assert.Equal(t, 0.5, rem)
	assert.Equal(t, 1.0, RemainingForRate(rem))

	assert.Equal(t, 0.0, RemainingForRate(0))
	assert.Equal(t, 2.5, RemainingForRate(2.5))
	assert.Equal(t, 1.0, RemainingForRate(1.0))
}
