package service

import (
	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

type ClientServices struct {
	Dispatcher     RequestDispatcher
	JournalService ClientJournalService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(
	localStore store.LocalStorage,
	serverAdapter adapter.ServerAdapter,
	notifier ConnectivityNotifier,
	logger *logger.Logger,
) *ClientServices {
	ids := utils.NewIDGenerator()
	handlers := map[models.Resource]OfflineHandler{
		models.ResourceDiary: NewDiaryOfflineHandler(localStore, ids, logger),
		models.ResourceMood:  NewMoodOfflineHandler(localStore, logger),
		models.ResourceTodos: NewTodoOfflineHandler(localStore, ids, logger),
	}

	dispatcher := NewRequestDispatcher(serverAdapter, notifier, handlers, logger)
	syncSvc := NewClientSyncService(localStore, notifier, logger)

	return &ClientServices{
		Dispatcher:     dispatcher,
		JournalService: NewClientJournalService(dispatcher),
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, notifier, logger),
	}
}
