package server

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/handler"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take after Run's
// context is done.
const shutdownTimeout = 5 * time.Second

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")
	return newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger), nil
}

func newHTTPServer(h http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}
