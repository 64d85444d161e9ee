package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage keeps one JSON-encoded list per resource family on the
// client device.
type LocalStorage interface {
	// GetList returns the stored list for resource, or nil if nothing was
	// stored yet.
	GetList(ctx context.Context, resource models.Resource) (json.RawMessage, error)
	// SetList replaces the stored list for resource.
	SetList(ctx context.Context, resource models.Resource, list json.RawMessage) error
}
