package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"meetapi/internal/config"
	"meetapi/internal/database"
	"meetapi/internal/database/migration"
	"meetapi/internal/logging"
	"meetapi/internal/otel"
	"meetapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// CLI is the command line of the API binary. Settings come from the environment.
type CLI struct {
	Serve struct {
		Migrate bool `help:"Apply the database schema before serving." default:"true" negatable:""`
	} `cmd:"" default:"withargs" help:"Run the HTTP server."`
	Migrate struct{} `cmd:"" help:"Apply the database schema and exit."`
}

// @title Meeting API
// @version 1.0
// @description Meetings, meeting notifications and file storage.
// @BasePath /
func main() {
	formatter.InitLogger()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("meetapi"),
		kong.Description("Meetings, notifications and file storage API."),
		kong.UsageOnError(),
	)

	cfg := config.Load()
	log := logging.New(cfg.Log)

	var err error
	switch kctx.Command() {
	case "migrate":
		err = runMigrate(cfg, log)
	default:
		err = runServe(cfg, log, cli.Serve.Migrate)
	}
	if err != nil {
		logrus.Errorf("%s failed: %v", kctx.Command(), err)
		os.Exit(1)
	}
}

func runMigrate(cfg *config.AppConfig, log *logrus.Logger) error {
	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return migration.EnsureMigrated(ctx, db, log, cfg.Database.Host)
}

func runServe(cfg *config.AppConfig, log *logrus.Logger, migrate bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
	}

	store, err := storage.FromConfig(cfg.FileStore, cfg.MinIO)
	if err != nil {
		return err
	}

	app, err := newServer(serverDeps{
		db:        db,
		store:     store,
		log:       log,
		registry:  prometheus.NewRegistry(),
		bodyLimit: cfg.BodyLimitMB << 20,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := net.JoinHostPort("", cfg.Port)
		log.WithFields(logrus.Fields{"addr": addr, "file_store": cfg.FileStore.Backend}).Info("server listening")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
