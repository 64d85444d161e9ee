// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages placed into response
// envelopes by the journal server handlers and by the client's offline
// fallback. Keeping them in one place keeps the wording consistent between
// the online and the offline paths.
package app

import "fmt"

// Server messages.
const (
	MsgDataFetched    = "Journal data loaded"
	MsgDataFetchError = "Could not load journal data"

	MsgDiaryFetched       = "Diary entries loaded"
	MsgDiaryFetchError    = "Could not load diary entries"
	MsgDiarySaved         = "Diary entry saved"
	MsgDiarySaveError     = "Could not save diary entry"
	MsgDiaryDeleted       = "Diary entry deleted"
	MsgDiaryDeleteError   = "Could not delete diary entry"
	MsgDiaryEntryNotFound = "Diary entry not found"

	MsgMoodFetched    = "Mood history loaded"
	MsgMoodFetchError = "Could not load mood history"
	MsgMoodSaved      = "Mood recorded"
	MsgMoodSaveError  = "Could not record mood"
	MsgMoodCleared    = "Mood history cleared"
	MsgMoodClearError = "Could not clear mood history"

	MsgTodosFetched    = "Todos loaded"
	MsgTodosFetchError = "Could not load todos"
	MsgTodoSaved       = "Todo added"
	MsgTodoSaveError   = "Could not add todo"
	MsgTodoUpdated     = "Todo updated"
	MsgTodoUpdateError = "Could not update todo"
	MsgTodoDeleted     = "Todo deleted"
	MsgTodoDeleteError = "Could not delete todo"
	MsgTodoNotFound    = "Todo not found"
	MsgTodoClearError  = "Could not clear completed todos"

	MsgServerHealthy       = "Server is running"
	MsgEndpointNotFound    = "Endpoint not found"
	MsgInternalServerError = "Internal server error"
	MsgInvalidDataProvided = "Invalid data provided"
	MsgInvalidPriority     = "Priority must be one of low, medium, high"
	MsgInvalidID           = "Id must be a positive integer"
)

// Client offline fallback messages.
const (
	MsgOfflineDiarySaved   = "Diary entry saved locally"
	MsgOfflineDiaryFetched = "Diary entries loaded from local storage"
	MsgOfflineMoodSaved    = "Mood saved locally"
	MsgOfflineMoodCleared  = "Local mood history cleared"
	MsgOfflineMoodFetched  = "Mood history loaded from local storage"
	MsgOfflineTodoSaved    = "Todo saved locally"
	MsgOfflineTodoUpdated  = "Todo updated in offline mode"
	MsgOfflineTodoDeleted  = "Todo deleted in offline mode"
	MsgOfflineTodosFetched = "Todos loaded from local storage"
	MsgLocalSaveFailed     = "Local save failed"
	MsgLocalReadFailed     = "Local data is unreadable"
	MsgServerUnreachable   = "Server unreachable, please try again later"
	MsgInvalidRequestBody  = "Request body cannot be encoded"
	MsgSyncOffline         = "Not connected, cannot sync"
)

// MsgTodosCleared reports how many completed todos were removed.
func MsgTodosCleared(count int) string {
	return fmt.Sprintf("Cleared %d completed todos", count)
}
