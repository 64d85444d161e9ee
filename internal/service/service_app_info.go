package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.Health {
	now := s.now()
	return models.Health{
		Timestamp: now.Format(time.RFC3339),
		Uptime:    now.Sub(s.startedAt).Seconds(),
		Version:   s.appVersion,
	}
}
