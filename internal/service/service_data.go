package service

import (
	"context"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
)

type dataService struct {
	document store.DocumentStorage
	logger   *logger.Logger
}

func NewDataService(document store.DocumentStorage, logger *logger.Logger) DataService {
	return &dataService{document: document, logger: logger}
}

func (s *dataService) GetAll(ctx context.Context) (models.Document, error) {
	return s.document.Read(ctx)
}
