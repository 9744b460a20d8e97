package repository

import (
	"context"
	"errors"

	"github.com/alexacafe/pos-api/internal/domain/entity"
	domainRepo "github.com/alexacafe/pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore creates a KVStore backed by the snapshots table.
func NewSnapshotStore(db *gorm.DB) domainRepo.KVStore {
	return &snapshotStore{db: db}
}

func (s *snapshotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var snap entity.Snapshot
	err := s.db.WithContext(ctx).First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return snap.Value, true, nil
}

func (s *snapshotStore) Set(ctx context.Context, key, value string) error {
	snap := entity.Snapshot{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&snap).Error
}
