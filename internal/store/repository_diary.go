package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type diaryRepository struct {
	document DocumentStorage
	logger   *logger.Logger
}

func NewDiaryRepository(document DocumentStorage, logger *logger.Logger) DiaryRepository {
	return &diaryRepository{document: document, logger: logger}
}

func (r *diaryRepository) ListDiary(ctx context.Context) ([]models.DiaryEntry, error) {
	doc, err := r.document.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diary: %w", err)
	}

	return doc.Diary, nil
}

// AddDiary puts entry in front of the list.
func (r *diaryRepository) AddDiary(ctx context.Context, entry models.DiaryEntry) error {
	return r.document.Update(ctx, func(doc *models.Document) error {
		doc.Diary = append([]models.DiaryEntry{entry}, doc.Diary...)
		return nil
	})
}

func (r *diaryRepository) DeleteDiary(ctx context.Context, id int64) error {
	return r.document.Update(ctx, func(doc *models.Document) error {
		for i, entry := range doc.Diary {
			if entry.ID == id {
				doc.Diary = append(doc.Diary[:i], doc.Diary[i+1:]...)
				return nil
			}
		}

		logger.FromContext(ctx).Debug().Int64("id", id).Msg("diary entry to delete was not found")
		return ErrDiaryEntryNotFound
	})
}
