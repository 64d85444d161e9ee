package models

import "time"

// MoodHistoryLimit is the maximum number of mood records kept. Older records
// are evicted first.
const MoodHistoryLimit = 100

// MoodRecord is a single mood check-in.
type MoodRecord struct {
	Mood      string `json:"mood"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

// MoodInput is the request body accepted when adding a mood record.
type MoodInput struct {
	Mood string `json:"mood"`
	Text string `json:"text"`
}

// NewMoodRecord builds a record from in. Timestamp is in unix milliseconds.
func NewMoodRecord(in MoodInput, now time.Time) MoodRecord {
	mood := in.Mood
	if mood == "" {
		mood = DefaultMood
	}

	return MoodRecord{
		Mood:      mood,
		Text:      in.Text,
		Timestamp: now.UnixMilli(),
		Date:      now.Format(DisplayDateLayout),
		CreatedAt: now.Format(time.RFC3339),
	}
}

// PrependMood inserts record at the head of history and trims the result to
// [MoodHistoryLimit] entries.
func PrependMood(history []MoodRecord, record MoodRecord) []MoodRecord {
	out := make([]MoodRecord, 0, len(history)+1)
	out = append(out, record)
	out = append(out, history...)
	if len(out) > MoodHistoryLimit {
		out = out[:MoodHistoryLimit]
	}
	return out
}
