// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Document is the single JSON document persisted by the server. It owns the
// canonical diary, mood and to-do lists.
type Document struct {
	Diary    []DiaryEntry `json:"diary"`
	Mood     []MoodRecord `json:"mood"`
	Todos    []TodoItem   `json:"todos"`
	Settings Settings     `json:"settings"`
}

// Settings holds document bookkeeping timestamps in RFC 3339 format.
// LastUpdated is refreshed on every write.
type Settings struct {
	CreatedAt   string `json:"createdAt"`
	LastUpdated string `json:"lastUpdated"`
}

// NewDocument returns an empty document stamped with now.
func NewDocument(now time.Time) Document {
	stamp := now.Format(time.RFC3339)
	return Document{
		Diary:    []DiaryEntry{},
		Mood:     []MoodRecord{},
		Todos:    []TodoItem{},
		Settings: Settings{CreatedAt: stamp, LastUpdated: stamp},
	}
}

// Normalize replaces nil lists with empty ones so the document always
// serializes lists as JSON arrays.
func (d *Document) Normalize() {
	if d.Diary == nil {
		d.Diary = []DiaryEntry{}
	}
	if d.Mood == nil {
		d.Mood = []MoodRecord{}
	}
	if d.Todos == nil {
		d.Todos = []TodoItem{}
	}
}
