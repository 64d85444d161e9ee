package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDiaryEntryNotFound is returned when a delete targets a diary entry id
	// that is not in the document.
	ErrDiaryEntryNotFound = errors.New("diary entry not found")

	// ErrTodoNotFound is returned when an update or delete targets a to-do id
	// that is not in the document.
	ErrTodoNotFound = errors.New("todo not found")
)

// Document file errors. The underlying I/O or decoding error is joined to
// these so both can be matched.
var (
	// ErrReadingDocument is returned when the JSON document cannot be read
	// or decoded.
	ErrReadingDocument = errors.New("error reading journal document")

	// ErrWritingDocument is returned when the JSON document cannot be encoded
	// or written to disk.
	ErrWritingDocument = errors.New("error writing journal document")
)

// Low-level database operation errors of the client local storage.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the local
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// against the local database fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a stored list value fails.
	ErrScanningRow = errors.New("failed to scan local list row")
)
