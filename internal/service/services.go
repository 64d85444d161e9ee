package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

type Services struct {
	AppInfoService AppInfoService
	DataService    DataService
	DiaryService   DiaryService
	MoodService    MoodService
	TodoService    TodoService
}

// NewServices wires the server services on top of storages. Record ids
// continue after the largest id already present in the document.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	doc, err := storages.Document.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading journal document: %w", err)
	}

	ids := utils.NewIDGenerator()
	ids.Seed(maxRecordID(doc))

	return &Services{
		AppInfoService: appInfo,
		DataService:    NewDataService(storages.Document, logger),
		DiaryService:   NewDiaryValidationService().Wrap(NewDiaryService(storages.DiaryRepository, ids, logger)),
		MoodService:    NewMoodValidationService().Wrap(NewMoodService(storages.MoodRepository, logger)),
		TodoService:    NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, ids, logger)),
	}, nil
}

func maxRecordID(doc models.Document) int64 {
	var maxID int64
	for _, entry := range doc.Diary {
		maxID = max(maxID, entry.ID)
	}
	for _, item := range doc.Todos {
		maxID = max(maxID, item.ID)
	}
	return maxID
}
