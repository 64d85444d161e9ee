package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type localListRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalListRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localListRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localListRepository) GetList(ctx context.Context, resource models.Resource) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetListQuery(resource)
	if err != nil {
		log.Err(err).Str("func", "localListRepository.GetList").Msg("error building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localListRepository.GetList").
			Str("key", localListKey(resource)).
			Msg("failed to read local list")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return json.RawMessage(value), nil
}

func (l *localListRepository) SetList(ctx context.Context, resource models.Resource, list json.RawMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetListQuery(resource, list)
	if err != nil {
		log.Err(err).Str("func", "localListRepository.SetList").Msg("error building query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localListRepository.SetList").
			Str("key", localListKey(resource)).
			Msg("failed to save local list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
