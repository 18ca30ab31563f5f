package http

import (
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

type Handler struct {
	services *service.Services

	version        string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the control API handler. A positive requestTimeout
// bounds every request.
func NewHandler(services *service.Services, version string, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		version:        version,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
