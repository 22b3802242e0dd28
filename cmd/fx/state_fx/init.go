package state_fx

import (
	"globehopper/internal/repositories"
	"globehopper/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideSnapshotRepo, provideStateService)

func provideSnapshotRepo(db *gorm.DB) repositories.SnapshotRepository {
	return repositories.NewSnapshotRepository(db)
}

func provideStateService(repo repositories.SnapshotRepository) (services.StateServiceInterface, error) {
	return services.NewStateService(repo)
}
