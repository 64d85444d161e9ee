package tui

import (
	"github.com/MKhiriev/go-journal/models"
)

// result is what every journal call reports back to the UI.
type result struct {
	success bool
	message string
	err     error
}

func newResult(success bool, message string, err error) result {
	return result{success: success, message: message, err: err}
}

// failure returns the text to show when the call did not succeed, or "".
func (r result) failure() string {
	if r.err != nil {
		return humanizeError(r.err)
	}
	if !r.success {
		if r.message == "" {
			return "Операция не выполнена"
		}
		return r.message
	}
	return ""
}

type diaryLoadedMsg struct {
	items []models.DiaryEntry
	result
}

type moodLoadedMsg struct {
	items []models.MoodRecord
	result
}

type todosLoadedMsg struct {
	items []models.TodoItem
	result
}

// actionDoneMsg is sent after any mutating call; the tab is reloaded on
// success.
type actionDoneMsg struct {
	tab tab
	result
}

type syncDoneMsg struct {
	err error
}

type connectivityMsg struct {
	online bool
}
