package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
)

type moodService struct {
	repo store.MoodRepository
	now  func() time.Time

	logger *logger.Logger
}

func NewMoodService(repo store.MoodRepository, logger *logger.Logger) MoodService {
	return &moodService{repo: repo, now: time.Now, logger: logger}
}

func (s *moodService) List(ctx context.Context) ([]models.MoodRecord, error) {
	return s.repo.ListMood(ctx)
}

func (s *moodService) Add(ctx context.Context, in models.MoodInput) (models.MoodRecord, error) {
	record := models.NewMoodRecord(in, s.now())

	if err := s.repo.AddMood(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "moodService.Add").Msg("error saving mood record")
		return models.MoodRecord{}, fmt.Errorf("save mood record: %w", err)
	}

	return record, nil
}

func (s *moodService) Clear(ctx context.Context) error {
	if err := s.repo.ClearMood(ctx); err != nil {
		return fmt.Errorf("clear mood history: %w", err)
	}
	return nil
}
