package usecases

import (
	"context"
	"firewatch-server/internal/fire_monitoring/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/fire_monitoring/usecases/api_mock.go -package=usecases

type ViewStateService interface {
	ComputeVisibleSensors(domain.DistrictKey, *domain.SensorID) []domain.Sensor
	ResolveIncidentLocation(domain.DistrictKey, *domain.SensorID) *domain.Coordinates
	BuildViewState(DashboardRequest) domain.ViewState
}

type DashboardService interface {
	Dashboard(context.Context, DashboardRequest) (Dashboard, error)
	Districts(context.Context) ([]domain.District, error)
	Sensors(context.Context, domain.DistrictKey) ([]domain.Sensor, error)
}
