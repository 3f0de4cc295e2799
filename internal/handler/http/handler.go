package http

import (
	"time"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	logger         *logger.Logger
}

// NewHandler creates the HTTP handler. A non-positive requestTimeout disables
// the per-request deadline.
func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Dur("request_timeout", requestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
