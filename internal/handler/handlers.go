package handler

import (
	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/handler/http"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the control API handlers. The control API is optional;
// without an address there is nothing to build.
func NewHandlers(deps http.Dependencies, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Msg("creating new handlers...")
	return &Handlers{HTTP: http.NewHandler(deps, logger)}, nil
}
