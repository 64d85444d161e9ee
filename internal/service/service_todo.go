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

type todoService struct {
	repo store.TodoRepository
	ids  *utils.IDGenerator
	now  func() time.Time

	logger *logger.Logger
}

func NewTodoService(repo store.TodoRepository, ids *utils.IDGenerator, logger *logger.Logger) TodoService {
	return &todoService{repo: repo, ids: ids, now: time.Now, logger: logger}
}

func (s *todoService) List(ctx context.Context) ([]models.TodoItem, error) {
	return s.repo.ListTodos(ctx)
}

func (s *todoService) Add(ctx context.Context, in models.TodoInput) (models.TodoItem, error) {
	item, err := models.NewTodoItem(s.ids.Next(), in, s.now())
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.repo.AddTodo(ctx, item); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "todoService.Add").Msg("error saving todo")
		return models.TodoItem{}, fmt.Errorf("save todo: %w", err)
	}

	return item, nil
}

func (s *todoService) Update(ctx context.Context, id int64, patch models.TodoPatch) (models.TodoItem, error) {
	item, err := s.repo.UpdateTodo(ctx, id, patch)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("update todo %d: %w", id, err)
	}
	return item, nil
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	return nil
}

func (s *todoService) ClearCompleted(ctx context.Context) (int, error) {
	count, err := s.repo.ClearCompletedTodos(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear completed todos: %w", err)
	}
	return count, nil
}
