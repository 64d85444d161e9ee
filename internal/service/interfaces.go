package service

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

type DiaryService interface {
	List(ctx context.Context) ([]models.DiaryEntry, error)
	Add(ctx context.Context, in models.DiaryInput) (models.DiaryEntry, error)
	Delete(ctx context.Context, id int64) error
}

type MoodService interface {
	List(ctx context.Context) ([]models.MoodRecord, error)
	Add(ctx context.Context, in models.MoodInput) (models.MoodRecord, error)
	Clear(ctx context.Context) error
}

type TodoService interface {
	List(ctx context.Context) ([]models.TodoItem, error)
	Add(ctx context.Context, in models.TodoInput) (models.TodoItem, error)
	Update(ctx context.Context, id int64, patch models.TodoPatch) (models.TodoItem, error)
	Delete(ctx context.Context, id int64) error
	// ClearCompleted removes completed items and returns how many were removed.
	ClearCompleted(ctx context.Context) (int, error)
}

type DataService interface {
	GetAll(ctx context.Context) (models.Document, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Health reports the current time, process uptime and version.
	Health(ctx context.Context) models.Health
}

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// validating.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService
}

// MoodServiceWrapper is the [MoodService] counterpart of [DiaryServiceWrapper].
type MoodServiceWrapper interface {
	Wrap(MoodService) MoodService
}

// TodoServiceWrapper is the [TodoService] counterpart of [DiaryServiceWrapper].
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}
