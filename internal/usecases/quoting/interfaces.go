package quoting

import (
	"github.com/expcc/metas-cc-api/internal/domain"
)

// Quoter define la interfaz del motor de metas mensuales
type Quoter interface {
	// BuildQuotaTable calcula la tabla de metas del mes objetivo usando la
	// ventana de meses anteriores disponibles
	BuildQuotaTable(month string) (*domain.QuotaTable, error)

	// SimulateQuotas simula las metas del mes siguiente al último mes de la
	// ventana indicada
	SimulateQuotas(months []string) (*domain.QuotaTable, error)

	// GetAvailablePeriods devuelve los periodos con ventas registradas
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}
