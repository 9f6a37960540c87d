package http

import (
	"context"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/models"
)

// Engine is the part of the sync engine driven by the control API.
type Engine interface {
	Account() *models.Account
	Ping()
	Snapshot() []service.SessionSnapshot
	FetchAttachment(ctx context.Context, req models.AttachmentRequest) error
}

// SyncStarter queues collection syncs.
type SyncStarter interface {
	StartManualSync(ctx context.Context, collectionID int64) error
}

// Dependencies of a [Handler].
type Dependencies struct {
	Engine      Engine
	Scheduler   SyncStarter
	Collections store.CollectionRepository
	Attachments store.AttachmentRepository

	// AttachmentDir receives fetched attachments.
	AttachmentDir string
	BuildInfo     models.AppBuildInfo
}

type Handler struct {
	engine        Engine
	scheduler     SyncStarter
	collections   store.CollectionRepository
	attachments   store.AttachmentRepository
	attachmentDir string
	buildInfo     models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(deps Dependencies, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:        deps.Engine,
		scheduler:     deps.Scheduler,
		collections:   deps.Collections,
		attachments:   deps.Attachments,
		attachmentDir: deps.AttachmentDir,
		buildInfo:     deps.BuildInfo,
		logger:        logger,
	}
}
