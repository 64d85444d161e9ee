package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

// localList reads and writes one resource family as a whole JSON list.
type localList[T any] struct {
	storage  store.LocalStorage
	resource models.Resource
}

// load returns the stored list, or an empty one when nothing was stored yet.
func (l localList[T]) load(ctx context.Context) ([]T, error) {
	raw, err := l.storage.GetList(ctx, l.resource)
	if err != nil {
		return nil, fmt.Errorf("read local %s: %w", l.resource, err)
	}

	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode local %s: %w", l.resource, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (l localList[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode local %s: %w", l.resource, err)
	}
	if err = l.storage.SetList(ctx, l.resource, raw); err != nil {
		return fmt.Errorf("write local %s: %w", l.resource, err)
	}
	return nil
}

func listEnvelope[T any](items []T, message string) models.RawEnvelope {
	envelope, err := models.NewRawEnvelope(items, message)
	if err != nil {
		return models.Fail[json.RawMessage](app.MsgLocalReadFailed)
	}
	return envelope
}

func recordEnvelope(record any, message string) models.RawEnvelope {
	envelope, err := models.NewRawEnvelope(record, message)
	if err != nil {
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}
	return envelope
}

// ── diary ────────────────────────────────────────────────────────────────────

type diaryOfflineHandler struct {
	list localList[models.DiaryEntry]
	ids  *utils.IDGenerator
	now  func() time.Time

	logger *logger.Logger
}

// NewDiaryOfflineHandler serves diary requests from local storage. Deleting
// is not supported offline: a DELETE answers with the local list.
func NewDiaryOfflineHandler(storage store.LocalStorage, ids *utils.IDGenerator, logger *logger.Logger) OfflineHandler {
	return &diaryOfflineHandler{
		list:   localList[models.DiaryEntry]{storage: storage, resource: models.ResourceDiary},
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (h *diaryOfflineHandler) Handle(ctx context.Context, method string, _ models.Endpoint, body json.RawMessage) models.RawEnvelope {
	entries, err := h.list.load(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "diaryOfflineHandler.Handle").Msg("local diary is unreadable")
		return models.Fail[json.RawMessage](app.MsgLocalReadFailed)
	}

	if method != http.MethodPost {
		return listEnvelope(entries, app.MsgOfflineDiaryFetched)
	}

	var in models.DiaryInput
	if err = json.Unmarshal(body, &in); err != nil {
		h.logger.Err(err).Str("func", "diaryOfflineHandler.Handle").Msg("invalid diary body")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	for _, e := range entries {
		h.ids.Seed(e.ID)
	}
	entry := models.NewDiaryEntry(h.ids.Next(), in, h.now())

	if err = h.list.save(ctx, append([]models.DiaryEntry{entry}, entries...)); err != nil {
		h.logger.Err(err).Str("func", "diaryOfflineHandler.Handle").Msg("error saving diary entry locally")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	return recordEnvelope(entry, app.MsgOfflineDiarySaved)
}

// ── mood ─────────────────────────────────────────────────────────────────────

type moodOfflineHandler struct {
	list localList[models.MoodRecord]
	now  func() time.Time

	logger *logger.Logger
}

// NewMoodOfflineHandler serves mood requests from local storage. A DELETE
// clears the whole local history.
func NewMoodOfflineHandler(storage store.LocalStorage, logger *logger.Logger) OfflineHandler {
	return &moodOfflineHandler{
		list:   localList[models.MoodRecord]{storage: storage, resource: models.ResourceMood},
		now:    time.Now,
		logger: logger,
	}
}

func (h *moodOfflineHandler) Handle(ctx context.Context, method string, _ models.Endpoint, body json.RawMessage) models.RawEnvelope {
	if method == http.MethodDelete {
		if err := h.list.save(ctx, []models.MoodRecord{}); err != nil {
			h.logger.Err(err).Str("func", "moodOfflineHandler.Handle").Msg("error clearing local mood history")
			return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
		}
		return recordEnvelope(nil, app.MsgOfflineMoodCleared)
	}

	history, err := h.list.load(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "moodOfflineHandler.Handle").Msg("local mood history is unreadable")
		return models.Fail[json.RawMessage](app.MsgLocalReadFailed)
	}

	if method != http.MethodPost {
		return listEnvelope(history, app.MsgOfflineMoodFetched)
	}

	var in models.MoodInput
	if err = json.Unmarshal(body, &in); err != nil {
		h.logger.Err(err).Str("func", "moodOfflineHandler.Handle").Msg("invalid mood body")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	record := models.NewMoodRecord(in, h.now())
	if err = h.list.save(ctx, models.PrependMood(history, record)); err != nil {
		h.logger.Err(err).Str("func", "moodOfflineHandler.Handle").Msg("error saving mood locally")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	return recordEnvelope(record, app.MsgOfflineMoodSaved)
}

// ── todos ────────────────────────────────────────────────────────────────────

type todoOfflineHandler struct {
	list localList[models.TodoItem]
	ids  *utils.IDGenerator
	now  func() time.Time

	logger *logger.Logger
}

// NewTodoOfflineHandler serves todo requests from local storage. Updates and
// deletions are acknowledged but not applied to the local list.
func NewTodoOfflineHandler(storage store.LocalStorage, ids *utils.IDGenerator, logger *logger.Logger) OfflineHandler {
	return &todoOfflineHandler{
		list:   localList[models.TodoItem]{storage: storage, resource: models.ResourceTodos},
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (h *todoOfflineHandler) Handle(ctx context.Context, method string, _ models.Endpoint, body json.RawMessage) models.RawEnvelope {
	switch method {
	case http.MethodPut:
		return recordEnvelope(nil, app.MsgOfflineTodoUpdated)
	case http.MethodDelete:
		return recordEnvelope(nil, app.MsgOfflineTodoDeleted)
	}

	items, err := h.list.load(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "todoOfflineHandler.Handle").Msg("local todos are unreadable")
		return models.Fail[json.RawMessage](app.MsgLocalReadFailed)
	}

	if method != http.MethodPost {
		return listEnvelope(items, app.MsgOfflineTodosFetched)
	}

	var in models.TodoInput
	if err = json.Unmarshal(body, &in); err != nil {
		h.logger.Err(err).Str("func", "todoOfflineHandler.Handle").Msg("invalid todo body")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	for _, item := range items {
		h.ids.Seed(item.ID)
	}
	item, err := models.NewTodoItem(h.ids.Next(), in, h.now())
	if err != nil {
		h.logger.Err(err).Str("func", "todoOfflineHandler.Handle").Msg("invalid todo")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	if err = h.list.save(ctx, append([]models.TodoItem{item}, items...)); err != nil {
		h.logger.Err(err).Str("func", "todoOfflineHandler.Handle").Msg("error saving todo locally")
		return models.Fail[json.RawMessage](app.MsgLocalSaveFailed)
	}

	return recordEnvelope(item, app.MsgOfflineTodoSaved)
}
