package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type moodRepository struct {
	document DocumentStorage
	logger   *logger.Logger
}

func NewMoodRepository(document DocumentStorage, logger *logger.Logger) MoodRepository {
	return &moodRepository{document: document, logger: logger}
}

func (r *moodRepository) ListMood(ctx context.Context) ([]models.MoodRecord, error) {
	doc, err := r.document.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mood: %w", err)
	}

	return doc.Mood, nil
}

// AddMood prepends record and drops the oldest records beyond
// [models.MoodHistoryLimit].
func (r *moodRepository) AddMood(ctx context.Context, record models.MoodRecord) error {
	return r.document.Update(ctx, func(doc *models.Document) error {
		doc.Mood = models.PrependMood(doc.Mood, record)
		return nil
	})
}

func (r *moodRepository) ClearMood(ctx context.Context) error {
	return r.document.Update(ctx, func(doc *models.Document) error {
		doc.Mood = []models.MoodRecord{}
		return nil
	})
}
