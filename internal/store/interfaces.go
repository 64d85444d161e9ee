package store

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

// DocumentStorage owns the single JSON document that holds every journal
// list on the server.
type DocumentStorage interface {
	// EnsureDocument creates a default document if none exists yet.
	EnsureDocument(ctx context.Context) error
	// Read returns the current document with all lists non-nil.
	Read(ctx context.Context) (models.Document, error)
	// Update runs fn against the current document and persists the result
	// if fn returns nil. settings.lastUpdated is refreshed on every write.
	Update(ctx context.Context, fn func(doc *models.Document) error) error
}

type DiaryRepository interface {
	ListDiary(ctx context.Context) ([]models.DiaryEntry, error)
	AddDiary(ctx context.Context, entry models.DiaryEntry) error
	DeleteDiary(ctx context.Context, id int64) error
}

type MoodRepository interface {
	ListMood(ctx context.Context) ([]models.MoodRecord, error)
	AddMood(ctx context.Context, record models.MoodRecord) error
	ClearMood(ctx context.Context) error
}

type TodoRepository interface {
	ListTodos(ctx context.Context) ([]models.TodoItem, error)
	AddTodo(ctx context.Context, item models.TodoItem) error
	UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (models.TodoItem, error)
	DeleteTodo(ctx context.Context, id int64) error
	ClearCompletedTodos(ctx context.Context) (int, error)
}
