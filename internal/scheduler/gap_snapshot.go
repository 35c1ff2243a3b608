// Package scheduler contiene los servicios de agendamiento de reportes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/expcc/metas-cc-api/internal/config"
	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/internal/usecases/tracking"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

type GapSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// GapSnapshotService recalcula periódicamente el reporte de avance del mes en
// curso y conserva en memoria la última foto generada. No persiste histórico.
type GapSnapshotService struct {
	scheduler          *gocron.Scheduler
	tracker            tracking.Tracker
	config             GapSnapshotConfig
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time

	snapshotMutex sync.RWMutex
	snapshot      *domain.GapReport
}

func NewGapSnapshotService(tracker tracking.Tracker, cfg *config.Config) *GapSnapshotService {
	snapshotConfig := GapSnapshotConfig{
		CronSchedule: cfg.GapSnapshot.CronSchedule, // Default: 7h de la mañana todos los días
		Enabled:      cfg.GapSnapshot.Enabled,      // Default: deshabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuración del agendador de fotos de avance cargada")

	return &GapSnapshotService{
		scheduler: scheduler,
		tracker:   tracker,
		config:    snapshotConfig,
	}
}

func (s *GapSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de fotos de avance deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fotos de avance")

	// Agendar el recálculo del reporte de avance del mes en curso
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSnapshot(); err != nil {
			logrus.WithError(err).Error("Error al recalcular la foto de avance")
		}
	})
	if err != nil {
		return fmt.Errorf("error al agendar el recálculo de la foto de avance: %w", err)
	}

	// Ejecutar el cron en una goroutine separada
	s.scheduler.StartAsync()

	// Detener el cron cuando el contexto se cancele
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de fotos de avance")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSnapshot genera el reporte de avance del mes en curso y lo deja como
// última foto disponible.
func (s *GapSnapshotService) RefreshSnapshot() error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Warn("Recálculo de foto de avance ya está en ejecución")
		return nil
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	asOf := time.Now()
	month := utils.MonthKey(asOf)

	logrus.WithField("month", month).Info("Iniciando recálculo de la foto de avance")

	report, err := s.tracker.BuildGapReport(month, asOf)
	if err != nil {
		logrus.WithError(err).Error("Error al generar el reporte de avance")
		return err
	}

	s.snapshotMutex.Lock()
	s.snapshot = report
	s.snapshotMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"month":           month,
		"rows":            len(report.Rows),
		"skipped_records": report.SkippedRecords,
	}).Info("Recálculo de la foto de avance concluido")

	return nil
}

// Snapshot devuelve la última foto generada, o nil si aún no hay ninguna.
func (s *GapSnapshotService) Snapshot() *domain.GapReport {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()

	return s.snapshot
}

// TriggerManualRun inicia manualmente un recálculo de la foto de avance
func (s *GapSnapshotService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Recálculo de foto de avance ya en curso, ignorando solicitud manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de la foto de avance")
	go s.RefreshSnapshot()
}

// GetStatus devuelve el estado actual del agendador
func (s *GapSnapshotService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"run_running":           s.runRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}

	s.snapshotMutex.RLock()
	if s.snapshot != nil {
		status["snapshot_month"] = s.snapshot.Month
		status["snapshot_as_of"] = s.snapshot.AsOf
	}
	s.snapshotMutex.RUnlock()

	return status
}
