package wire

import (
	"firewatch-server/cmd/config"
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/persistence"
	"firewatch-server/internal/fire_monitoring/usecases"
	"firewatch-server/internal/infra/utils"
	"fmt"
	"sync"
)

var (
	catalogRepository     *persistence.SimpleCatalogRepository
	catalogRepositoryErr  error
	catalogRepositoryOnce sync.Once
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

// provideCatalogRepository loads the catalog once and shares it between controllers.
func provideCatalogRepository(cfg config.AppConfig) (*persistence.SimpleCatalogRepository, error) {
	catalogRepositoryOnce.Do(func() {
		catalogRepository, catalogRepositoryErr = persistence.NewCatalogRepository(cfg.Dashboard.CatalogPath)
	})
	if catalogRepositoryErr != nil {
		return nil, fmt.Errorf("loading sensor catalog: %w", catalogRepositoryErr)
	}
	return catalogRepository, nil
}

func provideClock(cfg config.AppConfig) (*utils.LocalClock, error) {
	clock, err := utils.NewLocalClock(cfg.Dashboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("creating dashboard clock: %w", err)
	}
	return clock, nil
}

func provideEvacuationGuidance(cfg config.AppConfig) usecases.EvacuationGuidance {
	return usecases.EvacuationGuidance{
		RadiusMeters:           domain.EvacuationRadiusMeters,
		NearestEvacuationPoint: cfg.Dashboard.Evacuation.NearestPoint,
		EmergencyContacts:      cfg.Dashboard.Evacuation.EmergencyContacts,
	}
}
