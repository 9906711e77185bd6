//go:build wireinject
// +build wireinject

package wire

import (
	"firewatch-server/internal/fire_monitoring/httpapi"
	"firewatch-server/internal/fire_monitoring/persistence"
	"firewatch-server/internal/fire_monitoring/usecases"
	"firewatch-server/internal/infra/utils"

	"github.com/google/wire"
)

var CatalogRepositorySet = wire.NewSet(
	provideCatalogRepository,
	wire.Bind(new(usecases.CatalogRepository), new(*persistence.SimpleCatalogRepository)),
)

var DashboardServiceSet = wire.NewSet(
	provideAppConfig,
	CatalogRepositorySet,
	provideClock,
	wire.Bind(new(usecases.Clock), new(*utils.LocalClock)),
	provideEvacuationGuidance,
	usecases.NewViewStateService,
	wire.Bind(new(usecases.ViewStateService), new(*usecases.SimpleViewStateService)),
	usecases.NewDashboardService,
	wire.Bind(new(usecases.DashboardService), new(*usecases.SimpleDashboardService)),
)

func InitializeDashboardController() (*httpapi.DashboardController, error) {
	wire.Build(
		DashboardServiceSet,
		httpapi.NewDashboardController,
	)
	return nil, nil
}

func InitializeDistrictController() (*httpapi.DistrictController, error) {
	wire.Build(
		DashboardServiceSet,
		httpapi.NewDistrictController,
	)
	return nil, nil
}
