package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodySize is the largest request body accepted by the API.
const maxBodySize = 10 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, withGZip)
	router.Use(middleware.RequestSize(maxBodySize))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.getHealth)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/data", h.getAllData)
	})

	router.Group(func(r chi.Router) {
		r.Get("/api/diary", h.listDiary)
		r.Post("/api/diary", h.addDiary)
		r.Delete("/api/diary/{id}", h.deleteDiary)
	})

	router.Group(func(r chi.Router) {
		r.Get("/api/mood", h.listMood)
		r.Post("/api/mood", h.addMood)
		r.Delete("/api/mood", h.clearMood)
	})

	router.Group(func(r chi.Router) {
		r.Get("/api/todos", h.listTodos)
		r.Post("/api/todos", h.addTodo)
		r.Delete("/api/todos/completed/clear", h.clearCompletedTodos)
		r.Put("/api/todos/{id}", h.updateTodo)
		r.Delete("/api/todos/{id}", h.deleteTodo)
	})

	return router
}
