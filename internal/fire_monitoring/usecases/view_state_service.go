package usecases

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"slices"
)

func NewViewStateService(repository CatalogRepository) *SimpleViewStateService {
	return &SimpleViewStateService{
		repository: repository,
	}
}

var _ ViewStateService = &SimpleViewStateService{}

type SimpleViewStateService struct {
	repository CatalogRepository
}

// ComputeVisibleSensors returns a copy of the district's sensors with the
// active fire sensor, if it resolves, forced to abnormal.
func (s *SimpleViewStateService) ComputeVisibleSensors(key domain.DistrictKey, activeFireSensorID *domain.SensorID) []domain.Sensor {
	sensors := slices.Clone(s.repository.GetSensors(key))
	if sensors == nil {
		sensors = []domain.Sensor{}
	}
	if activeFireSensorID == nil {
		return sensors
	}

	for i := range sensors {
		if sensors[i].ID == *activeFireSensorID {
			sensors[i] = sensors[i].WithStatus(domain.SensorStatusAbnormal)
			break
		}
	}

	return sensors
}

func (s *SimpleViewStateService) ResolveIncidentLocation(key domain.DistrictKey, activeFireSensorID *domain.SensorID) *domain.Coordinates {
	if activeFireSensorID == nil {
		return nil
	}

	sensor, found := domain.FindSensor(s.repository.GetSensors(key), *activeFireSensorID)
	if !found {
		return nil
	}

	location := sensor.Coordinates
	return &location
}

func (s *SimpleViewStateService) BuildViewState(request DashboardRequest) domain.ViewState {
	state := domain.ViewState{
		DistrictKey:           request.DistrictKey,
		FireSimulationEnabled: request.SimulateFire,
	}
	if !request.SimulateFire || request.FireSensorID == nil {
		return state
	}

	location := s.ResolveIncidentLocation(request.DistrictKey, request.FireSensorID)
	if location == nil {
		return state
	}

	id := *request.FireSensorID
	state.ActiveFireSensorID = &id
	state.IncidentLocation = location
	return state
}
