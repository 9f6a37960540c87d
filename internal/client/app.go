package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/handler"
	handlerhttp "github.com/MKhiriev/go-eas-sync/internal/handler/http"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/parser"
	"github.com/MKhiriev/go-eas-sync/internal/scheduler"
	"github.com/MKhiriev/go-eas-sync/internal/server"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/internal/workers"
	"github.com/MKhiriev/go-eas-sync/models"
)

type App struct {
	account   *models.Account
	storages  *store.ClientStorages
	adapter   adapter.ServerAdapter
	codec     wire.Codec
	engine    *service.Engine
	scheduler *scheduler.Scheduler
	server    server.Server

	validateOnly bool
	logger       *logger.Logger
}

// NewApp builds the process for the account in cfg. The store is opened
// and migrated here and closed by Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(ctx, cfg, buildInfo, storages, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(
	ctx context.Context,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	storages *store.ClientStorages,
	log *logger.Logger,
) (*App, error) {
	account := &models.Account{
		Host:          cfg.Account.Host,
		Username:      cfg.Account.Username,
		Password:      cfg.Account.Password,
		UseSSL:        cfg.Account.UseSSL,
		TrustAllCerts: cfg.Account.TrustAllCerts,
		Lookback:      cfg.Account.Lookback,
	}
	if err := storages.AccountRepository.EnsureAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	identity := service.LoadSessionIdentity(cfg.App.DeviceIDFile, cfg.App.DeviceType, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(*account, identity, cfg.Adapter, clientVersion(cfg.App, buildInfo), log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	codec := wire.NewXMLCodec()

	sched := scheduler.New(account.ID, storages.CollectionRepository, scheduler.Config{
		Rate:  cfg.Workers.ManualSyncRate,
		Burst: cfg.Workers.ManualSyncBurst,
	}, log)

	engine := service.NewEngine(account, service.Dependencies{
		Adapter:          serverAdapter,
		Codec:            codec,
		Storages:         storages,
		Scheduler:        sched,
		FolderParser:     parser.NewFolderListParser(storages),
		PingParser:       parser.NewPingParser(),
		CollectionParser: parser.NewSyncParser(storages),
		PingPolicy: service.PingPolicy{
			Window:     cfg.Workers.PingWindow,
			ShortSleep: cfg.Workers.PingShortSleep,
			LongSleep:  cfg.Workers.PingLongSleep,
			Heartbeat:  cfg.Workers.PingHeartbeat,
			ReadMargin: cfg.Adapter.PingReadMargin,
		},
		VersionPolicy: service.PinnedVersionPolicy,
		Identity:      identity,
		Logger:        log,
	})

	app := &App{
		account:      account,
		storages:     storages,
		adapter:      serverAdapter,
		codec:        codec,
		engine:       engine,
		scheduler:    sched,
		validateOnly: cfg.App.ValidateOnly,
		logger:       log,
	}

	handlers, err := handler.NewHandlers(handlerhttp.Dependencies{
		Engine:        engine,
		Scheduler:     sched,
		Collections:   storages.CollectionRepository,
		Attachments:   storages.AttachmentRepository,
		AttachmentDir: cfg.App.AttachmentDir,
		BuildInfo:     buildInfo,
	}, cfg.Server, log)
	switch {
	case handler.IsNotConfigured(err):
		log.Info().Msg("control API disabled")
	case err != nil:
		return nil, fmt.Errorf("create handlers: %w", err)
	default:
		if app.server, err = server.NewServer(handlers, cfg.Server, log); err != nil {
			return nil, fmt.Errorf("create server: %w", err)
		}
	}

	return app, nil
}

// clientVersion is the configured version unless it was left at the default
// and the binary carries a build version.
func clientVersion(cfg config.ClientApp, buildInfo models.AppBuildInfo) string {
	if cfg.Version == config.DefaultVersion && buildInfo.HasVersion() {
		return buildInfo.BuildVersion()
	}
	return cfg.Version
}

// Run validates the account and returns when the process was started with
// ValidateOnly; otherwise it runs the account worker, the scheduler and the
// control API until the account worker ends or ctx is done.
func (a *App) Run(ctx context.Context) (models.ExitStatus, error) {
	defer a.storages.Close()

	log := a.logger.ForSession(a.account.ID, models.AccountMailboxServerID)
	ctx = log.WithContext(ctx)

	if a.validateOnly {
		err := service.Validate(ctx, a.adapter, a.codec)
		status := service.ExitStatusFor(err)
		log.Info().Str("exit_status", status.String()).Msg("account validation finished")
		return status, err
	}

	main := a.engine.MainWorker()
	group := workers.New(
		main,
		workers.Func(func(ctx context.Context) error {
			return a.scheduler.Run(ctx, a.engine)
		}),
	)
	if a.server != nil {
		group.Add(a.server)
	}

	err := group.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	status := main.Session().ExitStatus()
	log.Info().Str("exit_status", status.String()).Msg("sync process finished")

	return status, err
}

// ExitCode maps a worker exit status to a process exit code.
func ExitCode(status models.ExitStatus) int {
	switch status {
	case models.ExitDone:
		return 0
	case models.ExitIOError:
		return 1
	case models.ExitLoginFailure:
		return 2
	default:
		return 3
	}
}
