package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjection(t *testing.T) {
	// viernes 14 de agosto de 2026, sin feriados en el mes
	asOf := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)

	proj, err := NewProjection("2026-08", asOf)
	require.NoError(t, err)

	assert.Equal(t, 23.5, proj.DaysTotal)
	assert.Equal(t, 11.0, proj.DaysElapsed)
	assert.Equal(t, 13.5, proj.DaysRemaining)
	assert.False(t, proj.Indeterminate())
}

func TestProjectionRates(t *testing.T) {
	proj := &Projection{DaysTotal: 23.5, DaysElapsed: 11.0, DaysRemaining: 13.5}

	assert.InDelta(t, 7.0/23.5, proj.RequiredDailyRate(7), 1e-9)
	assert.Equal(t, 3, proj.ExpectedByToday(7))
	assert.InDelta(t, 4.0/13.5, proj.RequiredDailyRateFromToday(4), 1e-9)

	// el sobre-cumplimiento no pide tasa negativa
	assert.Equal(t, 0.0, proj.RequiredDailyRateFromToday(-2))
}

func TestProjectionEdgeCases(t *testing.T) {
	// solo queda un sábado de medio crédito: se redondea a un día completo
	saturdayOnly := &Projection{DaysTotal: 23.5, DaysElapsed: 23.0, DaysRemaining: 0.5}
	assert.Equal(t, 3.0, saturdayOnly.RequiredDailyRateFromToday(3))

	// sin días restantes se reporta el faltante crudo
	monthOver := &Projection{DaysTotal: 23.5, DaysElapsed: 23.5, DaysRemaining: 0}
	assert.Equal(t, 5.0, monthOver.RequiredDailyRateFromToday(5))

	// mes degenerado: tasas indeterminadas en cero
	degenerate := &Projection{}
	assert.True(t, degenerate.Indeterminate())
	assert.Equal(t, 0.0, degenerate.RequiredDailyRate(7))
	assert.Equal(t, 0, degenerate.ExpectedByToday(7))
}

func TestExpectedByTodayClampsRatio(t *testing.T) {
	past := &Projection{DaysTotal: 20, DaysElapsed: 25, DaysRemaining: 0}
	assert.Equal(t, 8, past.ExpectedByToday(8))

	future := &Projection{DaysTotal: 20, DaysElapsed: 0, DaysRemaining: 20}
	assert.Equal(t, 0, future.ExpectedByToday(8))
}
