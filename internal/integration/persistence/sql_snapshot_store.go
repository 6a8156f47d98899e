// Package persistence implements snapshot store drivers.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// sqlSnapshotStore implements the adapter.SnapshotStore interface on a
// single-row key-value table, served by SQLite locally or Postgres when
// hosted.
type sqlSnapshotStore struct {
	db        *gorm.DB
	namespace string
}

// NewSQLSnapshotStore creates a SQL-backed snapshot store.
func NewSQLSnapshotStore(db *gorm.DB, namespace string) adapter.SnapshotStore {
	return &sqlSnapshotStore{
		db:        db,
		namespace: namespace,
	}
}

// Load retrieves and decodes the snapshot row for the namespace.
func (s *sqlSnapshotStore) Load(ctx context.Context) (*entity.Snapshot, error) {
	var row model.SnapshotModel
	result := s.db.WithContext(ctx).Where("namespace = ?", s.namespace).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot row: %w", result.Error)
	}

	var snapshot entity.Snapshot
	if err := json.Unmarshal(row.Data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save encodes the snapshot and upserts the namespace row.
func (s *sqlSnapshotStore) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	row := model.SnapshotModel{
		Namespace: s.namespace,
		Data:      data,
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to write snapshot row: %w", result.Error)
	}
	return nil
}

// Clear deletes the namespace row.
func (s *sqlSnapshotStore) Clear(ctx context.Context) error {
	result := s.db.WithContext(ctx).
		Where("namespace = ?", s.namespace).
		Delete(&model.SnapshotModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete snapshot row: %w", result.Error)
	}
	return nil
}
