package http

import (
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}
