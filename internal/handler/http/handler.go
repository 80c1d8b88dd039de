package http

import (
	"time"

	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/service"
)

// Handler serves the REST API of the clients service.
type Handler struct {
	clientService service.ClientService

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		clientService:  services.ClientService,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
