package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
)

var syncedResources = []models.Resource{models.ResourceDiary, models.ResourceMood, models.ResourceTodos}

type clientSyncService struct {
	storage store.LocalStorage
	status  ConnectivityStatus

	logger *logger.Logger
}

// NewClientSyncService returns the sync service. Reconciliation with the
// server is not implemented: an online sync only reports what is stored
// locally.
func NewClientSyncService(storage store.LocalStorage, status ConnectivityStatus, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{storage: storage, status: status, logger: logger}
}

func (s *clientSyncService) SyncLocalData(ctx context.Context) error {
	if !s.status.IsOnline() {
		return ErrOffline
	}

	sizes := make(map[string]any, len(syncedResources))
	for _, resource := range syncedResources {
		raw, err := s.storage.GetList(ctx, resource)
		if err != nil {
			return fmt.Errorf("read local %s: %w", resource, err)
		}

		var items []json.RawMessage
		if len(raw) > 0 {
			if err = json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("decode local %s: %w", resource, err)
			}
		}
		sizes[resource.String()] = len(items)
	}

	s.logger.Info().Str("func", "clientSyncService.SyncLocalData").Fields(sizes).Msg("local data ready for sync")

	return nil
}
