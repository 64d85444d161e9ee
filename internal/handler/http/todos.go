package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.TodoService.List(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgTodosFetchError, "*Handler.listTodos")
		return
	}

	writeOK(w, r, items, app.MsgTodosFetched, "*Handler.listTodos")
}

func (h *Handler) addTodo(w http.ResponseWriter, r *http.Request) {
	var in models.TodoInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, app.MsgTodoSaveError, "*Handler.addTodo")
		return
	}

	item, err := h.services.TodoService.Add(r.Context(), in)
	if err != nil {
		writeError(w, r, err, app.MsgTodoSaveError, "*Handler.addTodo")
		return
	}

	writeOK(w, r, item, app.MsgTodoSaved, "*Handler.addTodo")
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err, app.MsgTodoUpdateError, "*Handler.updateTodo")
		return
	}

	var patch models.TodoPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, app.MsgTodoUpdateError, "*Handler.updateTodo")
		return
	}

	item, err := h.services.TodoService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err, app.MsgTodoUpdateError, "*Handler.updateTodo")
		return
	}

	writeOK(w, r, item, app.MsgTodoUpdated, "*Handler.updateTodo")
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err, app.MsgTodoDeleteError, "*Handler.deleteTodo")
		return
	}

	if err = h.services.TodoService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, app.MsgTodoDeleteError, "*Handler.deleteTodo")
		return
	}

	writeOK(w, r, nil, app.MsgTodoDeleted, "*Handler.deleteTodo")
}

func (h *Handler) clearCompletedTodos(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.TodoService.ClearCompleted(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgTodoClearError, "*Handler.clearCompletedTodos")
		return
	}

	writeOK(w, r, nil, app.MsgTodosCleared(count), "*Handler.clearCompletedTodos")
}
