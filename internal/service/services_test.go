package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/validators"
	"github.com/MKhiriev/go-journal/models"
)

func newTestServices(t *testing.T) (*Services, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.json")
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.File{Path: path}, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(ctx, storages, config.App{Version: "test"}, logger.Nop())
	require.NoError(t, err)

	return services, path
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewServices_RequiresVersion(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.File{Path: filepath.Join(t.TempDir(), "j.json")}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(context.Background(), storages, config.App{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ── diary ────────────────────────────────────────────────────────────────────

func TestDiaryService_AddDefaultsAndOrder(t *testing.T) {
	s, _ := newTestServices(t)
	ctx := context.Background()

	first, err := s.DiaryService.Add(ctx, models.DiaryInput{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMood, first.Mood)
	assert.Empty(t, first.Content)
	assert.NotEmpty(t, first.CreatedAt)
	assert.NotEmpty(t, first.Date)

	second, err := s.DiaryService.Add(ctx, models.DiaryInput{Mood: "🙂", Content: "walked"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	list, err := s.DiaryService.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0])
	assert.Equal(t, first, list[1])
}

func TestDiaryService_Delete(t *testing.T) {
	s, _ := newTestServices(t)
	ctx := context.Background()

	entry, err := s.DiaryService.Add(ctx, models.DiaryInput{Content: "x"})
	require.NoError(t, err)

	require.NoError(t, s.DiaryService.Delete(ctx, entry.ID))
	assert.ErrorIs(t, s.DiaryService.Delete(ctx, entry.ID), store.ErrDiaryEntryNotFound)
	assert.ErrorIs(t, s.DiaryService.Delete(ctx, 0), ErrInvalidDataProvided)
}

// ── mood ─────────────────────────────────────────────────────────────────────

func TestMoodService_AddAndClear(t *testing.T) {
	s, _ := newTestServices(t)
	ctx := context.Background()

	record, err := s.MoodService.Add(ctx, models.MoodInput{Text: "calm"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMood, record.Mood)
	assert.Equal(t, "calm", record.Text)
	assert.Positive(t, record.Timestamp)

	list, err := s.MoodService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.MoodService.Clear(ctx))

	list, err = s.MoodService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ── todos ────────────────────────────────────────────────────────────────────

func TestTodoService_Lifecycle(t *testing.T) {
	s, _ := newTestServices(t)
	ctx := context.Background()

	item, err := s.TodoService.Add(ctx, models.TodoInput{Text: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, item.Priority)
	assert.False(t, item.Completed)

	updated, err := s.TodoService.Update(ctx, item.ID, models.TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Text)

	_, err = s.TodoService.Add(ctx, models.TodoInput{Text: "call mom", Priority: "high"})
	require.NoError(t, err)

	cleared, err := s.TodoService.ClearCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	list, err := s.TodoService.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "call mom", list[0].Text)
}

func TestTodoService_InvalidInput(t *testing.T) {
	s, _ := newTestServices(t)
	ctx := context.Background()

	_, err := s.TodoService.Add(ctx, models.TodoInput{Text: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, models.ErrInvalidPriority)

	_, err = s.TodoService.Update(ctx, -1, models.TodoPatch{})
	assert.ErrorIs(t, err, validators.ErrInvalidID)

	_, err = s.TodoService.Update(ctx, 123, models.TodoPatch{Text: strPtr("y")})
	assert.ErrorIs(t, err, store.ErrTodoNotFound)

	assert.ErrorIs(t, s.TodoService.Delete(ctx, 123), store.ErrTodoNotFound)
}

// ── ids ──────────────────────────────────────────────────────────────────────

func TestNewServices_IDsContinueAfterStoredOnes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	future := int64(9_999_999_999_999)
	doc := `{"diary":[{"id":` + "9999999999999" + `}],"mood":[],"todos":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, config.File{Path: path}, logger.Nop())
	require.NoError(t, err)
	services, err := NewServices(ctx, storages, config.App{Version: "test"}, logger.Nop())
	require.NoError(t, err)

	item, err := services.TodoService.Add(ctx, models.TodoInput{Text: "after"})
	require.NoError(t, err)
	assert.Equal(t, future+1, item.ID)
}

// ── data ─────────────────────────────────────────────────────────────────────

func TestDataService_GetAll(t *testing.T) {
	s, _ := newTestServices(t)
	ctx := context.Background()

	_, err := s.DiaryService.Add(ctx, models.DiaryInput{Content: "a"})
	require.NoError(t, err)
	_, err = s.TodoService.Add(ctx, models.TodoInput{Text: "b"})
	require.NoError(t, err)

	doc, err := s.DataService.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Diary, 1)
	assert.Len(t, doc.Todos, 1)
	assert.Empty(t, doc.Mood)
	assert.NotEmpty(t, doc.Settings.LastUpdated)
}
