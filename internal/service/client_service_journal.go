package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-journal/models"
)

type clientJournalService struct {
	dispatcher RequestDispatcher
}

func NewClientJournalService(dispatcher RequestDispatcher) ClientJournalService {
	return &clientJournalService{dispatcher: dispatcher}
}

func (s *clientJournalService) Health(ctx context.Context) (models.Envelope[models.Health], error) {
	return call[models.Health](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceHealth},
	})
}

func (s *clientJournalService) AllData(ctx context.Context) (models.Envelope[models.Document], error) {
	return call[models.Document](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceData},
	})
}

func (s *clientJournalService) Diary(ctx context.Context) (models.Envelope[[]models.DiaryEntry], error) {
	return call[[]models.DiaryEntry](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceDiary},
	})
}

func (s *clientJournalService) AddDiary(ctx context.Context, in models.DiaryInput) (models.Envelope[models.DiaryEntry], error) {
	return call[models.DiaryEntry](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceDiary},
		Method:   http.MethodPost,
		Body:     in,
	})
}

func (s *clientJournalService) DeleteDiary(ctx context.Context, id int64) (models.Envelope[json.RawMessage], error) {
	return s.dispatcher.Dispatch(ctx, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceDiary, ID: id},
		Method:   http.MethodDelete,
	})
}

func (s *clientJournalService) Mood(ctx context.Context) (models.Envelope[[]models.MoodRecord], error) {
	return call[[]models.MoodRecord](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceMood},
	})
}

func (s *clientJournalService) AddMood(ctx context.Context, in models.MoodInput) (models.Envelope[models.MoodRecord], error) {
	return call[models.MoodRecord](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceMood},
		Method:   http.MethodPost,
		Body:     in,
	})
}

func (s *clientJournalService) ClearMood(ctx context.Context) (models.Envelope[json.RawMessage], error) {
	return s.dispatcher.Dispatch(ctx, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceMood},
		Method:   http.MethodDelete,
	})
}

func (s *clientJournalService) Todos(ctx context.Context) (models.Envelope[[]models.TodoItem], error) {
	return call[[]models.TodoItem](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceTodos},
	})
}

func (s *clientJournalService) AddTodo(ctx context.Context, in models.TodoInput) (models.Envelope[models.TodoItem], error) {
	return call[models.TodoItem](ctx, s.dispatcher, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceTodos},
		Method:   http.MethodPost,
		Body:     in,
	})
}

func (s *clientJournalService) UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (models.Envelope[json.RawMessage], error) {
	return s.dispatcher.Dispatch(ctx, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceTodos, ID: id},
		Method:   http.MethodPut,
		Body:     patch,
	})
}

func (s *clientJournalService) DeleteTodo(ctx context.Context, id int64) (models.Envelope[json.RawMessage], error) {
	return s.dispatcher.Dispatch(ctx, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceTodos, ID: id},
		Method:   http.MethodDelete,
	})
}

func (s *clientJournalService) ClearCompletedTodos(ctx context.Context) (models.Envelope[json.RawMessage], error) {
	return s.dispatcher.Dispatch(ctx, models.Request{
		Endpoint: models.Endpoint{Resource: models.ResourceTodos, Action: models.ActionClearCompleted},
		Method:   http.MethodDelete,
	})
}

// call dispatches req and decodes the envelope payload into T.
func call[T any](ctx context.Context, dispatcher RequestDispatcher, req models.Request) (models.Envelope[T], error) {
	raw, err := dispatcher.Dispatch(ctx, req)
	if err != nil {
		return models.Fail[T](raw.Message), err
	}

	envelope, err := models.DecodeEnvelope[T](raw)
	if err != nil {
		return models.Fail[T](raw.Message), fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, req.Endpoint.Path(), err)
	}

	return envelope, nil
}
