package tracking

import (
	"time"

	"github.com/expcc/metas-cc-api/internal/domain"
)

// Tracker define la interfaz del reporte de avance contra metas
type Tracker interface {
	// BuildGapReport calcula el avance del mes rastreado al corte asOf,
	// con rollups por supervisor, por centro y global
	BuildGapReport(month string, asOf time.Time) (*domain.GapReport, error)
}
