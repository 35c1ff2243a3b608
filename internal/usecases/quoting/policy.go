package quoting

import (
	"math"
	"time"

	"github.com/expcc/metas-cc-api/internal/domain"
)

// Policy convierte antigüedad y promedio en la meta entera del mes.
type Policy struct {
	// MinTenureDays es el umbral de antigüedad por debajo del cual aplica
	// la meta de rampa fija.
	MinTenureDays int

	// NewHireDayCutoff es el día del mes a partir del cual un ingreso del
	// mes objetivo se marca como nuevo ingreso parcial.
	NewHireDayCutoff int
}

// DefaultPolicy replica la política vigente del negocio.
var DefaultPolicy = Policy{
	MinTenureDays:    41,
	NewHireDayCutoff: 9,
}

// Quota aplica la tabla de decisión; gana la primera regla que coincide.
// Un ejecutivo dado de baja siempre queda en 0.
func (p Policy) Quota(status string, tenureDays int, avg float64) int {
	if status == domain.StatusBaja {
		return 0
	}
	if tenureDays < p.MinTenureDays {
		return 6
	}
	if avg >= 7 {
		return int(math.Floor(avg)) + 1
	}
	if avg >= 6 {
		return int(math.Floor(avg)) + 2
	}
	return 7
}

// TenureDays devuelve los días entre la fecha de inicio efectiva y el primer
// día del mes objetivo, con piso en 0.
func TenureDays(start, monthStart time.Time) int {
	days := int(monthStart.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsNewHire marca los ingresos dentro del mes objetivo posteriores al día de
// corte. Informativa; no altera la meta.
func (p Policy) IsNewHire(start, monthStart time.Time) bool {
	return start.Year() == monthStart.Year() &&
		start.Month() == monthStart.Month() &&
		start.Day() > p.NewHireDayCutoff
}

// EffectiveStart resuelve la fecha de inicio: la fecha de contratación de
// nómina si existe, si no la primera venta observada del ejecutivo. Devuelve
// nil cuando no hay ninguna de las dos.
func EffectiveStart(profile *domain.EmployeeProfile, firstSale *time.Time) *time.Time {
	if profile != nil && profile.HireDate != nil {
		return profile.HireDate
	}
	return firstSale
}
