package handler

import (
	"fmt"
	"net/http"

	"github.com/expcc/metas-cc-api/internal/usecases/exporting"
	"github.com/expcc/metas-cc-api/internal/usecases/quoting"
	"github.com/expcc/metas-cc-api/internal/usecases/tracking"
	"github.com/expcc/metas-cc-api/pkg/apiErrors"
	"github.com/expcc/metas-cc-api/pkg/log"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportQuotaTable descarga la tabla de metas del mes como libro de Excel
func ExportQuotaTable(service quoting.Quoter, exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		if _, err := utils.ParseMonthKey(month); err != nil {
			logger.WithFields(log.Fields{
				"month": month,
				"error": err.Error(),
			}).Warn("export: parámetro month inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mes inválido. Use el formato yyyy-mm", nil)
			return
		}

		logger.WithField("month", month).Info("export: exportando tabla de metas")

		table, err := service.BuildQuotaTable(month)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("export: error al generar la tabla de metas")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al generar la tabla de metas", nil)
			return
		}

		workbook, err := exporter.QuotaWorkbook(table)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("export: error al armar el libro de metas")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al armar el libro de Excel", nil)
			return
		}

		writeWorkbook(w, fmt.Sprintf("metas-%s.xlsx", month), workbook)
	})
}

// ExportGapReport descarga el reporte de avance del mes como libro de Excel
func ExportGapReport(service tracking.Tracker, exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		asOf, err := gapCutoff(r)
		if err != nil {
			logger.WithError(err).Warn("export: parámetro as_of inválido")
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
			}).Warn("export: parámetro month inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mes inválido. Use el formato yyyy-mm", nil)
			return
		}

		logger.WithField("month", month).Info("export: exportando reporte de avance")

		report, err := service.BuildGapReport(month, asOf)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("export: error al generar el reporte de avance")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al generar el reporte de avance", nil)
			return
		}

		workbook, err := exporter.GapWorkbook(report)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("export: error al armar el libro de avances")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Error al armar el libro de Excel", nil)
			return
		}

		writeWorkbook(w, fmt.Sprintf("avances-%s.xlsx", month), workbook)
	})
}

func writeWorkbook(w http.ResponseWriter, filename string, workbook []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(workbook)))

	if _, err := w.Write(workbook); err != nil {
		log.L.WithError(err).Error("export: error al escribir el libro en la respuesta")
	}
}
