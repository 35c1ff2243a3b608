package tracking

import (
	"math"
	"time"

	"github.com/expcc/metas-cc-api/pkg/calendar"
)

// rateEpsilon protege el piso de esperado-a-hoy contra bordes de punto
// flotante.
const rateEpsilon = 1e-9

// Projection son los días hábiles equivalentes del mes rastreado al corte.
type Projection struct {
	DaysTotal     float64
	DaysElapsed   float64
	DaysRemaining float64
}

func NewProjection(month string, asOf time.Time) (*Projection, error) {
	total, err := calendar.MonthTotal(month)
	if err != nil {
		return nil, err
	}
	elapsed, err := calendar.ElapsedInMonth(month, asOf)
	if err != nil {
		return nil, err
	}
	remaining, err := calendar.RemainingInMonth(month, asOf)
	if err != nil {
		return nil, err
	}

	return &Projection{
		DaysTotal:     total,
		DaysElapsed:   elapsed,
		DaysRemaining: remaining,
	}, nil
}

// Indeterminate reporta un mes sin días hábiles equivalentes; las tasas no
// se calculan en lugar de dividir entre cero.
func (p *Projection) Indeterminate() bool {
	return p.DaysTotal <= 0
}

// RequiredDailyRate es la tasa diaria para cumplir la meta sobre el mes
// completo.
func (p *Projection) RequiredDailyRate(quota int) float64 {
	if p.Indeterminate() {
		return 0
	}
	return float64(quota) / p.DaysTotal
}

// ExpectedByToday es el piso de la meta prorrateada a los días ya
// transcurridos.
func (p *Projection) ExpectedByToday(quota int) int {
	if p.Indeterminate() {
		return 0
	}
	ratio := p.DaysElapsed / p.DaysTotal
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Floor(float64(quota)*ratio + rateEpsilon))
}

// RequiredDailyRateFromToday es la tasa diaria para cerrar el faltante en
// los días que quedan. Sin días restantes, reporta el faltante crudo.
func (p *Projection) RequiredDailyRateFromToday(gap int) float64 {
	pos := math.Max(float64(gap), 0)
	forRate := calendar.RemainingForRate(p.DaysRemaining)
	if forRate > 0 {
		return pos / forRate
	}
	return pos
}
