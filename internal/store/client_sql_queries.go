// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal/models"
)

const (
	localStorageTable = "local_storage"
	localKeyColumn    = "key"
	localValueColumn  = "value"
)

// localListKey maps a resource family to its row key.
func localListKey(resource models.Resource) string {
	return resource.String()
}

func buildGetListQuery(resource models.Resource) (string, []any, error) {
	return sq.Select(localValueColumn).
		From(localStorageTable).
		Where(sq.Eq{localKeyColumn: localListKey(resource)}).
		ToSql()
}

func buildSetListQuery(resource models.Resource, list []byte) (string, []any, error) {
	return sq.Insert(localStorageTable).
		Columns(localKeyColumn, localValueColumn).
		Values(localListKey(resource), string(list)).
		Suffix("ON CONFLICT(" + localKeyColumn + ") DO UPDATE SET " + localValueColumn + " = excluded." + localValueColumn).
		ToSql()
}
