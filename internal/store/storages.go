package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
)

// Storages groups the server-side repositories. All of them share one
// [DocumentStorage].
type Storages struct {
	Document        DocumentStorage
	DiaryRepository DiaryRepository
	MoodRepository  MoodRepository
	TodoRepository  TodoRepository
}

// NewStorages opens the JSON document at cfg.Path, creating a default one if
// it does not exist.
func NewStorages(ctx context.Context, cfg config.File, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	document := NewJSONDocumentStorage(cfg.Path, logger)
	if err := document.EnsureDocument(ctx); err != nil {
		return nil, fmt.Errorf("error preparing journal document: %w", err)
	}

	return &Storages{
		Document:        document,
		DiaryRepository: NewDiaryRepository(document, logger),
		MoodRepository:  NewMoodRepository(document, logger),
		TodoRepository:  NewTodoRepository(document, logger),
	}, nil
}
