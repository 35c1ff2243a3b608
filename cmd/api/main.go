package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/expcc/metas-cc-api/infrastructure/database/postgres"
	"github.com/expcc/metas-cc-api/infrastructure/repository"
	"github.com/expcc/metas-cc-api/internal/api"
	"github.com/expcc/metas-cc-api/internal/config"
	"github.com/expcc/metas-cc-api/internal/scheduler"
	"github.com/expcc/metas-cc-api/internal/usecases/authenticating"
	"github.com/expcc/metas-cc-api/internal/usecases/exporting"
	"github.com/expcc/metas-cc-api/internal/usecases/quoting"
	"github.com/expcc/metas-cc-api/internal/usecases/tracking"
)

func main() {
	// Inicializa la configuración de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define el nivel de log a partir de la configuración
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	deliveryRepo := repository.NewDeliveryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	quoter := quoting.NewService(cfg, saleRepo, employeeRepo)
	tracker := tracking.NewService(quoter, deliveryRepo)
	exporter := exporting.NewService()

	// Inicializa el agendador de fotos de avance
	gapSnapshotService := scheduler.NewGapSnapshotService(tracker, cfg)

	if err := gapSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de fotos de avance")
	} else {
		logrus.Info("Agendador de fotos de avance iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		quoter,
		tracker,
		exporter,
		authenticator,
		gapSnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
