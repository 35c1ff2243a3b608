package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/expcc/metas-cc-api/internal/scheduler"
	"github.com/expcc/metas-cc-api/internal/usecases/tracking"
	"github.com/expcc/metas-cc-api/pkg/apiErrors"
	"github.com/expcc/metas-cc-api/pkg/log"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

// gapCutoff resuelve el día de corte del reporte: el parámetro as_of
// (yyyy-mm-dd) cuando viene, hoy en caso contrario.
func gapCutoff(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now(), nil
	}

	cutoff, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}

	return *cutoff, nil
}

// GetGapReport retorna el reporte de avance contra meta del mes. Sin el
// parámetro month se rastrea el mes en curso; as_of permite recalcular el
// avance con un día de corte distinto a hoy.
func GetGapReport(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		asOf, err := gapCutoff(r)
		if err != nil {
			logger.WithError(err).Warn("gaps: parámetro as_of inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Fecha de corte inválida. Use el formato yyyy-mm-dd", nil)
			return
		}

		month := r.URL.Query().Get("month")
		if month == "" {
			month = utils.MonthKey(asOf)
		}

		if _, err := utils.ParseMonthKey(month); err != nil {
			logger.WithFields(log.Fields{
				"month": month,
				"error": err.Error(),
			}).Warn("gaps: parámetro month inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mes inválido. Use el formato yyyy-mm", nil)
			return
		}

		logger.WithField("month", month).Info("gaps: generando reporte de avance")

		report, err := service.BuildGapReport(month, asOf)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("gaps: error al generar el reporte de avance")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al generar el reporte de avance", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month":           month,
			"executives":      len(report.Rows),
			"skipped_records": report.SkippedRecords,
		}).Info("gaps: reporte de avance generado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("gaps: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// GetGapSnapshot retorna la última foto del reporte de avance calculada por
// el cron, sin tocar los feeds.
func GetGapSnapshot(snapshotService *scheduler.GapSnapshotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := snapshotService.Snapshot()
		if snapshot == nil {
			logger.Info("gaps: aún no hay foto de avance disponible")
			apiErrors.WriteError(w, apiErrors.ErrReportUnavailable, "Aún no se ha calculado ninguna foto de avance", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month": snapshot.Month,
			"as_of": snapshot.AsOf,
		}).Info("gaps: entregando la última foto de avance")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("gaps: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}
