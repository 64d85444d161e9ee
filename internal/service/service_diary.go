package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

type diaryService struct {
	repo store.DiaryRepository
	ids  *utils.IDGenerator
	now  func() time.Time

	logger *logger.Logger
}

func NewDiaryService(repo store.DiaryRepository, ids *utils.IDGenerator, logger *logger.Logger) DiaryService {
	return &diaryService{repo: repo, ids: ids, now: time.Now, logger: logger}
}

func (s *diaryService) List(ctx context.Context) ([]models.DiaryEntry, error) {
	return s.repo.ListDiary(ctx)
}

func (s *diaryService) Add(ctx context.Context, in models.DiaryInput) (models.DiaryEntry, error) {
	entry := models.NewDiaryEntry(s.ids.Next(), in, s.now())

	if err := s.repo.AddDiary(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "diaryService.Add").Msg("error saving diary entry")
		return models.DiaryEntry{}, fmt.Errorf("save diary entry: %w", err)
	}

	return entry, nil
}

func (s *diaryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDiary(ctx, id); err != nil {
		return fmt.Errorf("delete diary entry %d: %w", id, err)
	}
	return nil
}
