package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"globehopper/internal/models/db_models"
	"gorm.io/gorm"
)

const snapshotRowID = 1

// SnapshotRepository reads and writes the single application-state record.
type SnapshotRepository interface {
	Load(ctx context.Context) (*db_models.AppState, error)
	Save(ctx context.Context, state *db_models.AppState) error
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Load returns nil state (no error) when no snapshot has been written yet.
func (r *snapshotRepository) Load(ctx context.Context) (*db_models.AppState, error) {
	var row db_models.Snapshot
	err := r.db.WithContext(ctx).First(&row, snapshotRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state db_models.AppState
	if err := json.Unmarshal(row.Data, &state); err != nil {
		// A corrupt snapshot should not brick the app; start fresh.
		return nil, nil
	}
	return &state, nil
}

func (r *snapshotRepository) Save(ctx context.Context, state *db_models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	row := db_models.Snapshot{ID: snapshotRowID, Data: data}
	return r.db.WithContext(ctx).Save(&row).Error
}
