// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

// jsonDocumentStorage keeps the whole journal in one JSON file. Every write
// rewrites the file through a temporary sibling and a rename, so readers
// never observe a half-written document.
type jsonDocumentStorage struct {
	path string

	mu  sync.Mutex
	now func() time.Time

	logger *logger.Logger
}

// NewJSONDocumentStorage returns a [DocumentStorage] backed by the file at
// path. The file is not touched until the first call.
func NewJSONDocumentStorage(path string, logger *logger.Logger) DocumentStorage {
	return &jsonDocumentStorage{
		path:   path,
		now:    time.Now,
		logger: logger,
	}
}

func (s *jsonDocumentStorage) EnsureDocument(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Join(ErrReadingDocument, err)
	}

	if err := s.write(models.NewDocument(s.now())); err != nil {
		return err
	}

	s.logger.Info().Str("path", s.path).Msg("created new journal document")
	return nil
}

func (s *jsonDocumentStorage) Read(ctx context.Context) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

func (s *jsonDocumentStorage) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}

	if err = fn(&doc); err != nil {
		return err
	}

	doc.Settings.LastUpdated = s.now().Format(time.RFC3339)
	if err = s.write(doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jsonDocumentStorage.Update").Msg("error saving document")
		return err
	}

	return nil
}

func (s *jsonDocumentStorage) read(ctx context.Context) (models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jsonDocumentStorage.read").Msg("error reading document")
		return models.Document{}, errors.Join(ErrReadingDocument, err)
	}

	var doc models.Document
	if err = json.Unmarshal(data, &doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jsonDocumentStorage.read").Msg("error decoding document")
		return models.Document{}, errors.Join(ErrReadingDocument, err)
	}
	doc.Normalize()

	return doc, nil
}

func (s *jsonDocumentStorage) write(doc models.Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Join(ErrWritingDocument, err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrWritingDocument, fmt.Errorf("create document dir: %w", err))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Join(ErrWritingDocument, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return errors.Join(ErrWritingDocument, err)
	}
	if err = tmp.Close(); err != nil {
		return errors.Join(ErrWritingDocument, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return errors.Join(ErrWritingDocument, err)
	}

	return nil
}
