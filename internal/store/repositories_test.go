package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(context.Background(), config.File{Path: t.TempDir() + "/journal.json"}, logger.NewLogger("test"))
	require.NoError(t, err)

	return storages
}

func ptr[T any](v T) *T { return &v }

func TestDiaryRepository_AddListDelete(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	repo := s.DiaryRepository

	require.NoError(t, repo.AddDiary(ctx, models.DiaryEntry{ID: 1, Content: "first"}))
	require.NoError(t, repo.AddDiary(ctx, models.DiaryEntry{ID: 2, Content: "second"}))

	list, err := repo.ListDiary(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID, "newest entry goes first")

	require.NoError(t, repo.DeleteDiary(ctx, 1))

	list, err = repo.ListDiary(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Content)
}

func TestDiaryRepository_DeleteMissing(t *testing.T) {
	s := newTestStorages(t)

	err := s.DiaryRepository.DeleteDiary(context.Background(), 42)

	assert.ErrorIs(t, err, ErrDiaryEntryNotFound)
}

func TestMoodRepository_CapAndClear(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	repo := s.MoodRepository

	for i := range models.MoodHistoryLimit + 5 {
		require.NoError(t, repo.AddMood(ctx, models.MoodRecord{Timestamp: int64(i)}))
	}

	list, err := repo.ListMood(ctx)
	require.NoError(t, err)
	require.Len(t, list, models.MoodHistoryLimit)
	assert.Equal(t, int64(models.MoodHistoryLimit+4), list[0].Timestamp)
	assert.Equal(t, int64(5), list[len(list)-1].Timestamp)

	require.NoError(t, repo.ClearMood(ctx))

	list, err = repo.ListMood(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTodoRepository_Update(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	repo := s.TodoRepository

	require.NoError(t, repo.AddTodo(ctx, models.TodoItem{ID: 10, Text: "buy milk", Priority: models.PriorityMedium}))

	tests := []struct {
		name    string
		id      int64
		patch   models.TodoPatch
		want    models.TodoItem
		wantErr error
	}{
		{
			name:  "complete",
			id:    10,
			patch: models.TodoPatch{Completed: ptr(true)},
			want:  models.TodoItem{ID: 10, Text: "buy milk", Priority: models.PriorityMedium, Completed: true},
		},
		{
			name:  "rename and reprioritise",
			id:    10,
			patch: models.TodoPatch{Text: ptr("buy oat milk"), Priority: ptr("high")},
			want:  models.TodoItem{ID: 10, Text: "buy oat milk", Priority: models.PriorityHigh, Completed: true},
		},
		{
			name:    "invalid priority",
			id:      10,
			patch:   models.TodoPatch{Priority: ptr("urgent")},
			wantErr: models.ErrInvalidPriority,
		},
		{
			name:    "unknown id",
			id:      99,
			patch:   models.TodoPatch{Completed: ptr(true)},
			wantErr: ErrTodoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.UpdateTodo(ctx, tt.id, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	list, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.PriorityHigh, list[0].Priority, "failed patch must not be persisted")
}

func TestTodoRepository_DeleteAndClearCompleted(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	repo := s.TodoRepository

	require.NoError(t, repo.AddTodo(ctx, models.TodoItem{ID: 1, Completed: true}))
	require.NoError(t, repo.AddTodo(ctx, models.TodoItem{ID: 2}))
	require.NoError(t, repo.AddTodo(ctx, models.TodoItem{ID: 3, Completed: true}))
	require.NoError(t, repo.AddTodo(ctx, models.TodoItem{ID: 4}))

	assert.ErrorIs(t, repo.DeleteTodo(ctx, 99), ErrTodoNotFound)
	require.NoError(t, repo.DeleteTodo(ctx, 4))

	cleared, err := repo.ClearCompletedTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	list, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)

	cleared, err = repo.ClearCompletedTodos(ctx)
	require.NoError(t, err)
	assert.Zero(t, cleared)
}
