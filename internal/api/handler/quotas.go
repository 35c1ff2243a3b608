package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/expcc/metas-cc-api/internal/usecases/quoting"
	"github.com/expcc/metas-cc-api/pkg/apiErrors"
	"github.com/expcc/metas-cc-api/pkg/log"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

var errInvalidMonths = errors.New("Meses inválidos. Use una lista de claves yyyy-mm separadas por comas")

// GetQuotaTable retorna la tabla de metas del mes objetivo
func GetQuotaTable(service quoting.Quoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		if month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Es necesario indicar el mes en el parámetro month (yyyy-mm)", nil)
			return
		}

		if _, err := utils.ParseMonthKey(month); err != nil {
			logger.WithFields(log.Fields{
				"month": month,
				"error": err.Error(),
			}).Warn("quotas: parámetro month inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mes inválido. Use el formato yyyy-mm", nil)
			return
		}

		logger.WithField("month", month).Info("quotas: generando tabla de metas")

		table, err := service.BuildQuotaTable(month)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("quotas: error al generar la tabla de metas")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al generar la tabla de metas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month":           month,
			"executives":      len(table.Rows),
			"total_quota":     table.TotalQuota,
			"skipped_records": table.SkippedRecords,
		}).Info("quotas: tabla de metas generada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logger.WithError(err).Error("quotas: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// SimulateQuotas simula las metas del mes siguiente a un intervalo de meses
func SimulateQuotas(service quoting.Quoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		months, err := parseMonthsParam(r.URL.Query().Get("months"))
		if err != nil {
			logger.WithFields(log.Fields{
				"months": r.URL.Query().Get("months"),
				"error":  err.Error(),
			}).Warn("quotas: parámetro months inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		logger.WithField("months", months).Info("quotas: simulando metas del mes siguiente")

		table, err := service.SimulateQuotas(months)
		if err != nil {
			logger.WithError(err).WithField("months", months).Error("quotas: error al simular metas")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al simular las metas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"target_month": table.Month,
			"executives":   len(table.Rows),
			"total_quota":  table.TotalQuota,
		}).Info("quotas: simulación generada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logger.WithError(err).Error("quotas: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// GetAvailablePeriods retorna los periodos con ventas registradas
func GetAvailablePeriods(service quoting.Quoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("periods: buscando periodos disponibles")

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("periods: error al buscar periodos disponibles")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al buscar los periodos disponibles", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(periods.Periods),
			"years":         periods.Years,
		}).Info("periods: periodos disponibles recuperados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("periods: error al codificar la respuesta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	})
}

// parseMonthsParam interpreta una lista "yyyy-mm,yyyy-mm,..." de claves de mes.
func parseMonthsParam(raw string) ([]string, error) {
	if raw == "" {
		return nil, errInvalidMonths
	}

	parts := strings.Split(raw, ",")
	months := make([]string, 0, len(parts))
	for _, part := range parts {
		month := strings.TrimSpace(part)
		if _, err := utils.ParseMonthKey(month); err != nil {
			return nil, errInvalidMonths
		}
		months = append(months, month)
	}

	return months, nil
}
