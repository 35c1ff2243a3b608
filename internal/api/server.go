package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/expcc/metas-cc-api/internal/api/handler"
	"github.com/expcc/metas-cc-api/internal/api/handler/router"
	"github.com/expcc/metas-cc-api/internal/config"
	"github.com/expcc/metas-cc-api/internal/scheduler"
	"github.com/expcc/metas-cc-api/internal/usecases/authenticating"
	"github.com/expcc/metas-cc-api/internal/usecases/exporting"
	"github.com/expcc/metas-cc-api/internal/usecases/quoting"
	"github.com/expcc/metas-cc-api/internal/usecases/tracking"
	"github.com/expcc/metas-cc-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	quoter quoting.Quoter,
	tracker tracking.Tracker,
	exporter exporting.Exporter,
	authenticator authenticating.Authenticator,
	gapSnapshotService *scheduler.GapSnapshotService,
) (*Server, error) {
	// Servicios de cron disponibles para ejecución manual
	cronServices := handler.CronJobServices{
		GapSnapshotService: gapSnapshotService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Quotas(quoter, exporter)...),
		router.WithRoutes(handler.Gaps(tracker, exporter, gapSnapshotService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Esperar la señal o la cancelación del contexto
	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de la aplicación cancelado")
	}

	// Timeout para el apagado
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado gracioso del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Ejecutando operaciones de limpieza antes del apagado")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
