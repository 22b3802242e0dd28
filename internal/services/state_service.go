package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"globehopper/internal/models/db_models"
	"globehopper/internal/repositories"
	"globehopper/pkg/utils"
	"sync"
)

// StateServiceInterface owns the whole application state. Every mutation
// runs under one lock and is followed by a synchronous snapshot write, so a
// crash never loses more than the in-flight change.
type StateServiceInterface interface {
	View(read func(s *db_models.AppState))
	Update(ctx context.Context, mutate func(s *db_models.AppState)) error
}

type StateService struct {
	mu    sync.Mutex
	state *db_models.AppState
	repo  repositories.SnapshotRepository
}

// NewStateService restores the persisted snapshot, or starts from defaults
// on first launch. Partial snapshots from older versions are tolerated.
func NewStateService(repo repositories.SnapshotRepository) (StateServiceInterface, error) {
	state, err := repo.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if state == nil {
		state = db_models.DefaultAppState()
		log.Info("No saved snapshot, starting with a fresh trip")
	} else {
		state.Normalize()
		log.Info("Restored trip state from snapshot")
	}

	return &StateService{state: state, repo: repo}, nil
}

func (s *StateService) View(read func(st *db_models.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	read(s.state)
}

func (s *StateService) Update(ctx context.Context, mutate func(st *db_models.AppState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(s.state)
	if err := s.repo.Save(ctx, s.state); err != nil {
		log.WithError(err).Error("snapshot save failed")
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
