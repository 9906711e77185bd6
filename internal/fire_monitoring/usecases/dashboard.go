package usecases

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/mapview"
	"firewatch-server/internal/fire_monitoring/summary"
	"time"
)

// DashboardRequest mirrors the dashboard controls. An empty DistrictKey
// selects the first configured district.
type DashboardRequest struct {
	DistrictKey  domain.DistrictKey
	SimulateFire bool
	FireSensorID *domain.SensorID
}

type DistrictOption struct {
	Key         domain.DistrictKey
	DisplayName string
	Selected    bool
}

type SensorOption struct {
	ID       domain.SensorID
	Label    string
	Selected bool
}

type EvacuationGuidance struct {
	RadiusMeters           int
	NearestEvacuationPoint string
	EmergencyContacts      []string
}

type Alert struct {
	SensorName string
	Location   string
	StatusText string
	DetectedAt string
	Guidance   EvacuationGuidance
}

// Dashboard is one full render. Map and summary are computed from Sensors.
type Dashboard struct {
	DistrictName    string
	ViewState       domain.ViewState
	DistrictOptions []DistrictOption
	SensorOptions   []SensorOption
	Sensors         []domain.Sensor
	Map             mapview.MapView
	SensorRows      []summary.SensorRow
	Statistics      summary.Statistics
	BatteryChart    []summary.BatteryBar
	Alert           *Alert
	GeneratedAt     time.Time
}
