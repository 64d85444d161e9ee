package models

import "time"

const (
	// DefaultMood is the placeholder mood tag used when a diary entry or a
	// mood record is created without one.
	DefaultMood = "😸"

	// DisplayDateLayout is the layout of the human-readable Date field shared
	// by diary entries and mood records.
	DisplayDateLayout = "2006/1/2 15:04:05"
)

// DiaryEntry is a single diary record. Entries are immutable once created;
// the only supported mutation is deletion.
type DiaryEntry struct {
	// ID is a monotonic identifier derived from the creation time in
	// milliseconds.
	ID int64 `json:"id"`

	// Date is the creation time rendered with [DisplayDateLayout].
	Date string `json:"date"`

	// Mood is a short tag, usually an emoji.
	Mood string `json:"mood"`

	// Content is the free-text body of the entry.
	Content string `json:"content"`

	// CreatedAt is the creation time in RFC 3339 format.
	CreatedAt string `json:"createdAt"`
}

// DiaryInput is the request body accepted when adding a diary entry.
type DiaryInput struct {
	Mood    string `json:"mood"`
	Content string `json:"content"`
}

// NewDiaryEntry builds an entry from in, applying the default mood tag when
// none is given.
func NewDiaryEntry(id int64, in DiaryInput, now time.Time) DiaryEntry {
	mood := in.Mood
	if mood == "" {
		mood = DefaultMood
	}

	return DiaryEntry{
		ID:        id,
		Date:      now.Format(DisplayDateLayout),
		Mood:      mood,
		Content:   in.Content,
		CreatedAt: now.Format(time.RFC3339),
	}
}
