package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Resource identifies the API resource a request targets. The three list
// resources (diary, mood, todos) form the resource families that are
// mirrored in the client's local storage.
type Resource int

const (
	ResourceUnknown Resource = iota
	ResourceDiary
	ResourceMood
	ResourceTodos
	ResourceHealth
	ResourceData
)

var resourceNames = map[Resource]string{
	ResourceDiary:  "diary",
	ResourceMood:   "mood",
	ResourceTodos:  "todos",
	ResourceHealth: "health",
	ResourceData:   "data",
}

// String returns the path segment of the resource.
func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsFamily reports whether r is one of the locally persisted list resources.
func (r Resource) IsFamily() bool {
	return r == ResourceDiary || r == ResourceMood || r == ResourceTodos
}

// ActionClearCompleted is the endpoint action that removes completed to-dos.
const ActionClearCompleted = "completed/clear"

// Endpoint is a logical API address relative to the /api prefix.
type Endpoint struct {
	Resource Resource

	// ID addresses a single record. Zero means the whole collection.
	ID int64

	// Action is an optional trailing path such as [ActionClearCompleted].
	Action string
}

// Path renders the endpoint as a path relative to the /api prefix,
// e.g. "/todos/42".
func (e Endpoint) Path() string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(e.Resource.String())
	if e.ID != 0 {
		b.WriteString("/")
		b.WriteString(strconv.FormatInt(e.ID, 10))
	}
	if e.Action != "" {
		b.WriteString("/")
		b.WriteString(e.Action)
	}
	return b.String()
}

// ParseEndpoint resolves a string path such as "/diary/17" or
// "/api/todos/completed/clear" into an [Endpoint].
func ParseEndpoint(path string) (Endpoint, error) {
	trimmed := strings.Trim(path, "/")
	trimmed = strings.TrimPrefix(trimmed, "api/")
	if trimmed == "api" {
		trimmed = ""
	}

	parts := strings.Split(trimmed, "/")
	var endpoint Endpoint
	for r, name := range resourceNames {
		if parts[0] == name {
			endpoint.Resource = r
		}
	}
	if endpoint.Resource == ResourceUnknown {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, path)
	}

	rest := parts[1:]
	switch {
	case len(rest) == 0:
		return endpoint, nil
	case strings.Join(rest, "/") == ActionClearCompleted && endpoint.Resource == ResourceTodos:
		endpoint.Action = ActionClearCompleted
		return endpoint, nil
	case len(rest) == 1:
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil || id <= 0 {
			return Endpoint{}, fmt.Errorf("%w: bad id in %q", ErrUnknownEndpoint, path)
		}
		endpoint.ID = id
		return endpoint, nil
	default:
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, path)
	}
}

// Request is a single call handed to the request dispatcher.
type Request struct {
	Endpoint Endpoint

	// Method is an HTTP method. Empty means GET.
	Method string

	// Body is serialized to JSON when non-nil.
	Body any
}
