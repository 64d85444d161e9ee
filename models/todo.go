package models

import (
	"fmt"
	"time"
)

// Priority is the urgency level of a to-do item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a raw priority value. An empty value resolves to
// [PriorityMedium].
func ParsePriority(raw string) (Priority, error) {
	switch p := Priority(raw); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
}

// TodoItem is a single to-do entry.
type TodoItem struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
	CreatedAt string   `json:"createdAt"`
}

// TodoInput is the request body accepted when adding a to-do item.
type TodoInput struct {
	Text     string `json:"text"`
	Priority string `json:"priority"`
}

// TodoPatch is a partial update of a to-do item. Nil fields are left
// untouched.
type TodoPatch struct {
	Text      *string `json:"text,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// NewTodoItem builds a pending to-do item from in.
func NewTodoItem(id int64, in TodoInput, now time.Time) (TodoItem, error) {
	priority, err := ParsePriority(in.Priority)
	if err != nil {
		return TodoItem{}, err
	}

	return TodoItem{
		ID:        id,
		Text:      in.Text,
		Priority:  priority,
		Completed: false,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

// Apply returns a copy of t with the non-nil fields of patch applied. An
// empty priority is rejected rather than reset to the default.
func (patch TodoPatch) Apply(t TodoItem) (TodoItem, error) {
	if patch.Text != nil {
		t.Text = *patch.Text
	}
	if patch.Priority != nil {
		if *patch.Priority == "" {
			return TodoItem{}, fmt.Errorf("%w: empty value", ErrInvalidPriority)
		}
		priority, err := ParsePriority(*patch.Priority)
		if err != nil {
			return TodoItem{}, err
		}
		t.Priority = priority
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return t, nil
}
