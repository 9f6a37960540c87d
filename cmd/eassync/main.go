package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-eas-sync/internal/client"
	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("eas-sync").Error().Err(err).Msg("error getting configs")
		return client.ExitCode(models.ExitException)
	}

	log := logger.NewLogger("eas-sync")
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("eas-sync", cfg.App.LogFile)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init sync app error")
		return client.ExitCode(models.ExitException)
	}

	status, err := app.Run(ctx)
	if err != nil {
		log.Error().Err(err).Str("exit_status", status.String()).Msg("sync run error")
	}
	return client.ExitCode(status)
}
