package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/internal/scheduler"
	"github.com/expcc/metas-cc-api/pkg/apiErrors"
	"github.com/expcc/metas-cc-api/pkg/middleware"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

// CronJobType define el tipo de cron job a ejecutar
const (
	CronJobTypeGapSnapshot = "gap-snapshot"
	CronJobTypeAll         = "all"
)

// CronJobServices contiene los servicios de cron disponibles para ejecución manual
type CronJobServices struct {
	GapSnapshotService *scheduler.GapSnapshotService
}

// RunCronJob ejecuta manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Solo administradores pueden ejecutar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden ejecutar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeGapSnapshot:
			if services.GapSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de fotos de avance no disponible", nil)
				return
			}
			services.GapSnapshotService.TriggerManualRun()

		case CronJobTypeAll:
			if services.GapSnapshotService != nil {
				services.GapSnapshotService.TriggerManualRun()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: gap-snapshot, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Solo administradores pueden consultar el estado de las crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden consultar el estado de cron jobs", nil)
			return
		}

		status := map[string]any{
			"gap-snapshot": services.GapSnapshotService.GetStatus(),
		}
		logrus.Debug(utils.PrettyJson(status))

		json.NewEncoder(w).Encode(status)
	}
}
