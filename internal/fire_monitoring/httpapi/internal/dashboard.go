package internal

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/mapview"
	"firewatch-server/internal/fire_monitoring/summary"
	"firewatch-server/internal/fire_monitoring/usecases"
	"time"
)

// Response models
type DashboardResponse struct {
	DistrictKey   string                   `json:"district_key" msgpack:"district_key"`
	DistrictName  string                   `json:"district_name" msgpack:"district_name"`
	ViewState     domain.ViewState         `json:"view_state" msgpack:"view_state"`
	Districts     []DistrictOptionResponse `json:"districts" msgpack:"districts"`
	SensorOptions []SensorOptionResponse   `json:"sensor_options,omitempty" msgpack:"sensor_options,omitempty"`
	Map           mapview.MapView          `json:"map" msgpack:"map"`
	Sensors       []SensorRowResponse      `json:"sensors" msgpack:"sensors"`
	Statistics    StatisticsResponse       `json:"statistics" msgpack:"statistics"`
	BatteryChart  []BatteryBarResponse     `json:"battery_chart" msgpack:"battery_chart"`
	Alert         *AlertResponse           `json:"alert,omitempty" msgpack:"alert,omitempty"`
	GeneratedAt   time.Time                `json:"generated_at" msgpack:"generated_at"`
}

type DistrictOptionResponse struct {
	Key         string `json:"key" msgpack:"key"`
	DisplayName string `json:"display_name" msgpack:"display_name"`
	Selected    bool   `json:"selected" msgpack:"selected"`
}

type SensorOptionResponse struct {
	ID       int    `json:"id" msgpack:"id"`
	Label    string `json:"label" msgpack:"label"`
	Selected bool   `json:"selected" msgpack:"selected"`
}

type SensorRowResponse struct {
	ID           int    `json:"id" msgpack:"id"`
	Glyph        string `json:"glyph" msgpack:"glyph"`
	Name         string `json:"name" msgpack:"name"`
	Location     string `json:"location" msgpack:"location"`
	StatusText   string `json:"status_text" msgpack:"status_text"`
	StatusClass  string `json:"status_class" msgpack:"status_class"`
	BatteryLevel int    `json:"battery_level" msgpack:"battery_level"`
	ActiveFire   bool   `json:"active_fire" msgpack:"active_fire"`
	LowBattery   bool   `json:"low_battery" msgpack:"low_battery"`
}

type StatisticsResponse struct {
	Total         int     `json:"total" msgpack:"total"`
	NormalCount   int     `json:"normal_count" msgpack:"normal_count"`
	WarningCount  int     `json:"warning_count" msgpack:"warning_count"`
	AbnormalCount int     `json:"abnormal_count" msgpack:"abnormal_count"`
	NormalPct     float64 `json:"normal_pct" msgpack:"normal_pct"`
	WarningPct    float64 `json:"warning_pct" msgpack:"warning_pct"`
	AbnormalPct   float64 `json:"abnormal_pct" msgpack:"abnormal_pct"`
}

type BatteryBarResponse struct {
	Name         string `json:"name" msgpack:"name"`
	BatteryLevel int    `json:"battery_level" msgpack:"battery_level"`
	LowBattery   bool   `json:"low_battery" msgpack:"low_battery"`
}

type AlertResponse struct {
	SensorName             string   `json:"sensor_name" msgpack:"sensor_name"`
	Location               string   `json:"location" msgpack:"location"`
	StatusText             string   `json:"status_text" msgpack:"status_text"`
	DetectedAt             string   `json:"detected_at" msgpack:"detected_at"`
	EvacuationRadiusMeters int      `json:"evacuation_radius_meters" msgpack:"evacuation_radius_meters"`
	NearestEvacuationPoint string   `json:"nearest_evacuation_point" msgpack:"nearest_evacuation_point"`
	EmergencyContacts      []string `json:"emergency_contacts" msgpack:"emergency_contacts"`
}

// Conversion functions
func ToDashboardResponse(dashboard usecases.Dashboard) DashboardResponse {
	response := DashboardResponse{
		DistrictKey:  dashboard.ViewState.DistrictKey.String(),
		DistrictName: dashboard.DistrictName,
		ViewState:    dashboard.ViewState,
		Districts:    make([]DistrictOptionResponse, len(dashboard.DistrictOptions)),
		Map:          dashboard.Map,
		Sensors:      make([]SensorRowResponse, len(dashboard.SensorRows)),
		Statistics:   toStatisticsResponse(dashboard.Statistics),
		BatteryChart: make([]BatteryBarResponse, len(dashboard.BatteryChart)),
		GeneratedAt:  dashboard.GeneratedAt,
	}

	for i, option := range dashboard.DistrictOptions {
		response.Districts[i] = DistrictOptionResponse{
			Key:         option.Key.String(),
			DisplayName: option.DisplayName,
			Selected:    option.Selected,
		}
	}
	for _, option := range dashboard.SensorOptions {
		response.SensorOptions = append(response.SensorOptions, SensorOptionResponse{
			ID:       int(option.ID),
			Label:    option.Label,
			Selected: option.Selected,
		})
	}
	for i, row := range dashboard.SensorRows {
		response.Sensors[i] = toSensorRowResponse(row)
	}
	for i, bar := range dashboard.BatteryChart {
		response.BatteryChart[i] = BatteryBarResponse{Name: bar.Name, BatteryLevel: bar.BatteryLevel, LowBattery: bar.LowBattery}
	}
	if dashboard.Alert != nil {
		response.Alert = &AlertResponse{
			SensorName:             dashboard.Alert.SensorName,
			Location:               dashboard.Alert.Location,
			StatusText:             dashboard.Alert.StatusText,
			DetectedAt:             dashboard.Alert.DetectedAt,
			EvacuationRadiusMeters: dashboard.Alert.Guidance.RadiusMeters,
			NearestEvacuationPoint: dashboard.Alert.Guidance.NearestEvacuationPoint,
			EmergencyContacts:      dashboard.Alert.Guidance.EmergencyContacts,
		}
	}

	return response
}

func toSensorRowResponse(row summary.SensorRow) SensorRowResponse {
	return SensorRowResponse{
		ID:           int(row.SensorID),
		Glyph:        row.Glyph,
		Name:         row.Name,
		Location:     row.Location,
		StatusText:   row.StatusText,
		StatusClass:  row.StatusClass.String(),
		BatteryLevel: row.BatteryLevel,
		ActiveFire:   row.ActiveFire,
		LowBattery:   row.LowBattery,
	}
}

func toStatisticsResponse(stats summary.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Total:         stats.Total,
		NormalCount:   stats.NormalCount,
		WarningCount:  stats.WarningCount,
		AbnormalCount: stats.AbnormalCount,
		NormalPct:     stats.NormalPct,
		WarningPct:    stats.WarningPct,
		AbnormalPct:   stats.AbnormalPct,
	}
}
