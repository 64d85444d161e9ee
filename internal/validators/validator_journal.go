package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/models"
)

const (
	FieldID       = "id"
	FieldMood     = "mood"
	FieldContent  = "content"
	FieldText     = "text"
	FieldPriority = "priority"
)

// JournalValidator validates diary, mood and to-do input.
type JournalValidator struct {
}

func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate accepts an id (int64), [models.DiaryInput], [models.MoodInput],
// [models.TodoInput] or [models.TodoPatch], by value or pointer.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case int64:
		return v.validateID(value, fields...)

	case models.DiaryInput:
		return v.validateDiaryInput(value, fields...)
	case *models.DiaryInput:
		return v.validateDiaryInput(*value, fields...)

	case models.MoodInput:
		return v.validateMoodInput(value, fields...)
	case *models.MoodInput:
		return v.validateMoodInput(*value, fields...)

	case models.TodoInput:
		return v.validateTodoInput(value, fields...)
	case *models.TodoInput:
		return v.validateTodoInput(*value, fields...)

	case models.TodoPatch:
		return v.validateTodoPatch(value, fields...)
	case *models.TodoPatch:
		return v.validateTodoPatch(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateID(id int64, fields ...string) error {
	for _, f := range fields {
		if f != FieldID {
			return ErrUnknownField
		}
	}

	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

func (v *JournalValidator) validateDiaryInput(in models.DiaryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMood, FieldContent}
	}

	// any mood tag and content are accepted; empty ones get defaults
	for _, f := range fields {
		switch f {
		case FieldMood, FieldContent:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateMoodInput(in models.MoodInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMood, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldMood, FieldText:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTodoInput checks the priority only; an empty to-do is allowed and
// stored with empty text.
func (v *JournalValidator) validateTodoInput(in models.TodoInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
		case FieldPriority:
			if _, err := models.ParsePriority(in.Priority); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateTodoPatch(patch models.TodoPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
		case FieldPriority:
			if patch.Priority == nil {
				continue
			}
			// a patch has no default priority to fall back to
			if *patch.Priority == "" {
				return fmt.Errorf("%s: %w: empty value", FieldPriority, models.ErrInvalidPriority)
			}
			if _, err := models.ParsePriority(*patch.Priority); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

