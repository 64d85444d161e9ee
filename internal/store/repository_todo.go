package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type todoRepository struct {
	document DocumentStorage
	logger   *logger.Logger
}

func NewTodoRepository(document DocumentStorage, logger *logger.Logger) TodoRepository {
	return &todoRepository{document: document, logger: logger}
}

func (r *todoRepository) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	doc, err := r.document.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return doc.Todos, nil
}

func (r *todoRepository) AddTodo(ctx context.Context, item models.TodoItem) error {
	return r.document.Update(ctx, func(doc *models.Document) error {
		doc.Todos = append([]models.TodoItem{item}, doc.Todos...)
		return nil
	})
}

// UpdateTodo applies patch to the item with the given id and returns the
// updated item. Nothing is written if the id is unknown or the patch is
// invalid.
func (r *todoRepository) UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (models.TodoItem, error) {
	var updated models.TodoItem

	err := r.document.Update(ctx, func(doc *models.Document) error {
		for i, item := range doc.Todos {
			if item.ID != id {
				continue
			}

			patched, err := patch.Apply(item)
			if err != nil {
				return err
			}

			doc.Todos[i] = patched
			updated = patched
			return nil
		}

		return ErrTodoNotFound
	})
	if err != nil {
		return models.TodoItem{}, err
	}

	return updated, nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id int64) error {
	return r.document.Update(ctx, func(doc *models.Document) error {
		for i, item := range doc.Todos {
			if item.ID == id {
				doc.Todos = append(doc.Todos[:i], doc.Todos[i+1:]...)
				return nil
			}
		}

		return ErrTodoNotFound
	})
}

// ClearCompletedTodos removes all completed items and reports how many were
// removed.
func (r *todoRepository) ClearCompletedTodos(ctx context.Context) (int, error) {
	var cleared int

	err := r.document.Update(ctx, func(doc *models.Document) error {
		kept := make([]models.TodoItem, 0, len(doc.Todos))
		for _, item := range doc.Todos {
			if item.Completed {
				cleared++
				continue
			}
			kept = append(kept, item)
		}
		doc.Todos = kept
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug().Int("cleared", cleared).Msg("completed todos cleared")
	return cleared, nil
}
