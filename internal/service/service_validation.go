package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/validators"
	"github.com/MKhiriev/go-journal/models"
)

// validatingWrapper validates input before it reaches the wrapped service.
// Validation failures wrap [ErrInvalidDataProvided].
type validatingWrapper struct {
	validator validators.Validator
}

func newValidatingWrapper() validatingWrapper {
	return validatingWrapper{validator: validators.NewJournalValidator()}
}

func (v validatingWrapper) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// ── diary ────────────────────────────────────────────────────────────────────

type DiaryValidationService struct {
	validatingWrapper
	inner DiaryService
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{validatingWrapper: newValidatingWrapper()}
}

func (d *DiaryValidationService) Wrap(inner DiaryService) DiaryService {
	return &DiaryValidationService{validatingWrapper: d.validatingWrapper, inner: inner}
}

func (d *DiaryValidationService) List(ctx context.Context) ([]models.DiaryEntry, error) {
	return d.inner.List(ctx)
}

func (d *DiaryValidationService) Add(ctx context.Context, in models.DiaryInput) (models.DiaryEntry, error) {
	if err := d.validate(ctx, in); err != nil {
		return models.DiaryEntry{}, err
	}
	return d.inner.Add(ctx, in)
}

func (d *DiaryValidationService) Delete(ctx context.Context, id int64) error {
	if err := d.validate(ctx, id, validators.FieldID); err != nil {
		return err
	}
	return d.inner.Delete(ctx, id)
}

// ── mood ─────────────────────────────────────────────────────────────────────

type MoodValidationService struct {
	validatingWrapper
	inner MoodService
}

func NewMoodValidationService() MoodServiceWrapper {
	return &MoodValidationService{validatingWrapper: newValidatingWrapper()}
}

func (m *MoodValidationService) Wrap(inner MoodService) MoodService {
	return &MoodValidationService{validatingWrapper: m.validatingWrapper, inner: inner}
}

func (m *MoodValidationService) List(ctx context.Context) ([]models.MoodRecord, error) {
	return m.inner.List(ctx)
}

func (m *MoodValidationService) Add(ctx context.Context, in models.MoodInput) (models.MoodRecord, error) {
	if err := m.validate(ctx, in); err != nil {
		return models.MoodRecord{}, err
	}
	return m.inner.Add(ctx, in)
}

func (m *MoodValidationService) Clear(ctx context.Context) error {
	return m.inner.Clear(ctx)
}

// ── todos ────────────────────────────────────────────────────────────────────

type TodoValidationService struct {
	validatingWrapper
	inner TodoService
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{validatingWrapper: newValidatingWrapper()}
}

func (t *TodoValidationService) Wrap(inner TodoService) TodoService {
	return &TodoValidationService{validatingWrapper: t.validatingWrapper, inner: inner}
}

func (t *TodoValidationService) List(ctx context.Context) ([]models.TodoItem, error) {
	return t.inner.List(ctx)
}

func (t *TodoValidationService) Add(ctx context.Context, in models.TodoInput) (models.TodoItem, error) {
	if err := t.validate(ctx, in); err != nil {
		return models.TodoItem{}, err
	}
	return t.inner.Add(ctx, in)
}

func (t *TodoValidationService) Update(ctx context.Context, id int64, patch models.TodoPatch) (models.TodoItem, error) {
	if err := t.validate(ctx, id, validators.FieldID); err != nil {
		return models.TodoItem{}, err
	}
	if err := t.validate(ctx, patch); err != nil {
		return models.TodoItem{}, err
	}
	return t.inner.Update(ctx, id, patch)
}

func (t *TodoValidationService) Delete(ctx context.Context, id int64) error {
	if err := t.validate(ctx, id, validators.FieldID); err != nil {
		return err
	}
	return t.inner.Delete(ctx, id)
}

func (t *TodoValidationService) ClearCompleted(ctx context.Context) (int, error) {
	return t.inner.ClearCompleted(ctx)
}
