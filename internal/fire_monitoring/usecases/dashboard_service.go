package usecases

import (
	"context"
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/mapview"
	"firewatch-server/internal/fire_monitoring/summary"
	"log/slog"
	"slices"
)

const detectedAtLayout = "15:04:05"

func NewDashboardService(
	repository CatalogRepository,
	viewState ViewStateService,
	clock Clock,
	guidance EvacuationGuidance,
) *SimpleDashboardService {
	return &SimpleDashboardService{
		repository: repository,
		viewState:  viewState,
		clock:      clock,
		guidance:   guidance,
	}
}

var _ DashboardService = &SimpleDashboardService{}

type SimpleDashboardService struct {
	repository CatalogRepository
	viewState  ViewStateService
	clock      Clock
	guidance   EvacuationGuidance
}

func (s *SimpleDashboardService) Dashboard(ctx context.Context, request DashboardRequest) (Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return Dashboard{}, err
	}

	districts := s.repository.Districts()
	if request.DistrictKey == "" && len(districts) > 0 {
		request.DistrictKey = districts[0].Key
	}

	state := s.viewState.BuildViewState(request)
	sensors := s.viewState.ComputeVisibleSensors(state.DistrictKey, state.ActiveFireSensorID)
	center := s.repository.DistrictCenter(state.DistrictKey)
	now := s.clock.Now()

	result := Dashboard{
		DistrictName:    state.DistrictKey.String(),
		ViewState:       state,
		DistrictOptions: districtOptions(districts, state.DistrictKey),
		Sensors:         sensors,
		Map:             mapview.Render(center, sensors, state.ActiveFireSensorID, state.IncidentLocation),
		SensorRows:      summary.RenderSensorList(sensors, state.ActiveFireSensorID),
		Statistics:      summary.ComputeStatistics(sensors),
		BatteryChart:    summary.RenderBatteryChart(sensors),
		GeneratedAt:     now,
	}

	district, known := s.repository.District(state.DistrictKey)
	if known {
		result.DistrictName = district.DisplayName
	} else {
		slog.Debug("dashboard requested for unknown district", slog.String("district", state.DistrictKey.String()))
	}

	if state.FireSimulationEnabled {
		result.SensorOptions = sensorOptions(district.Sensors, request.FireSensorID)
	}

	if state.HasIncident() {
		if sensor, found := domain.FindSensor(district.Sensors, *state.ActiveFireSensorID); found {
			result.Alert = s.alertFor(domain.Incident{
				Sensor:     sensor,
				Location:   *state.IncidentLocation,
				DetectedAt: now,
			})
			slog.Info("fire simulation active",
				slog.String("district", state.DistrictKey.String()),
				slog.Int("sensor_id", int(sensor.ID)),
				slog.String("sensor", sensor.Name),
			)
		}
	}

	return result, nil
}

func (s *SimpleDashboardService) Districts(ctx context.Context) ([]domain.District, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repository.Districts(), nil
}

func (s *SimpleDashboardService) Sensors(ctx context.Context, key domain.DistrictKey) ([]domain.Sensor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repository.GetSensors(key), nil
}

func (s *SimpleDashboardService) alertFor(incident domain.Incident) *Alert {
	return &Alert{
		SensorName: incident.Sensor.Name,
		Location:   incident.Sensor.Location,
		StatusText: domain.SensorStatusAbnormal.DisplayText(),
		DetectedAt: incident.DetectedAt.Format(detectedAtLayout),
		Guidance: EvacuationGuidance{
			RadiusMeters:           s.guidance.RadiusMeters,
			NearestEvacuationPoint: s.guidance.NearestEvacuationPoint,
			EmergencyContacts:      slices.Clone(s.guidance.EmergencyContacts),
		},
	}
}

func districtOptions(districts []domain.District, selected domain.DistrictKey) []DistrictOption {
	options := make([]DistrictOption, 0, len(districts))
	for _, d := range districts {
		options = append(options, DistrictOption{
			Key:         d.Key,
			DisplayName: d.DisplayName,
			Selected:    d.Key == selected,
		})
	}
	return options
}

func sensorOptions(sensors []domain.Sensor, selected *domain.SensorID) []SensorOption {
	options := make([]SensorOption, 0, len(sensors))
	for _, s := range sensors {
		options = append(options, SensorOption{
			ID:       s.ID,
			Label:    s.Label(),
			Selected: selected != nil && *selected == s.ID,
		})
	}
	return options
}
