package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-journal/models"
)

// ConnectivityStatus reports the cached online state of the client.
// *connectivity.Monitor satisfies it.
type ConnectivityStatus interface {
	IsOnline() bool
}

// ConnectivityNotifier is a ConnectivityStatus that also reports transitions.
type ConnectivityNotifier interface {
	ConnectivityStatus
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// RequestDispatcher sends API calls to the server and redirects them to
// local storage when the server cannot be reached.
type RequestDispatcher interface {
	// Dispatch issues req against the server.
	//
	// A 2xx answer is returned as is. A non-2xx answer while online yields a
	// failed envelope with the server message and an error wrapping the
	// adapter status sentinel. A transport failure, or any failure while
	// offline, is served by the local fallback, which never returns an
	// error. A body that cannot be encoded yields ErrInvalidRequestBody. A
	// canceled or expired ctx is returned as an error and never served from
	// local storage, whatever the connectivity state.
	Dispatch(ctx context.Context, req models.Request) (models.RawEnvelope, error)
}

// OfflineHandler emulates the server semantics of one resource family on top
// of the client's local storage. It never returns an error: every failure is
// reported through a failed envelope.
type OfflineHandler interface {
	Handle(ctx context.Context, method string, endpoint models.Endpoint, body json.RawMessage) models.RawEnvelope
}

// ClientJournalService is the typed client API, one method per server route.
// Every method goes through the RequestDispatcher, so each of them keeps
// working offline for the diary, mood and todo families.
//
// The returned envelope carries the message to show to the user. A non-nil
// error means the call failed and nothing was decoded.
type ClientJournalService interface {
	Health(ctx context.Context) (models.Envelope[models.Health], error)
	AllData(ctx context.Context) (models.Envelope[models.Document], error)

	Diary(ctx context.Context) (models.Envelope[[]models.DiaryEntry], error)
	AddDiary(ctx context.Context, in models.DiaryInput) (models.Envelope[models.DiaryEntry], error)
	DeleteDiary(ctx context.Context, id int64) (models.Envelope[json.RawMessage], error)

	Mood(ctx context.Context) (models.Envelope[[]models.MoodRecord], error)
	AddMood(ctx context.Context, in models.MoodInput) (models.Envelope[models.MoodRecord], error)
	ClearMood(ctx context.Context) (models.Envelope[json.RawMessage], error)

	Todos(ctx context.Context) (models.Envelope[[]models.TodoItem], error)
	AddTodo(ctx context.Context, in models.TodoInput) (models.Envelope[models.TodoItem], error)
	UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (models.Envelope[json.RawMessage], error)
	DeleteTodo(ctx context.Context, id int64) (models.Envelope[json.RawMessage], error)
	ClearCompletedTodos(ctx context.Context) (models.Envelope[json.RawMessage], error)
}

// ClientSyncService reconciles local data with the server.
type ClientSyncService interface {
	// SyncLocalData returns ErrOffline while the client is offline. Online it
	// reports the size of every local list; no data is transferred.
	SyncLocalData(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that runs
// SyncLocalData periodically and on every offline to online transition.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
