package domain

import "time"

// ViewState is derived from the operator's selection on every render.
// IncidentLocation is set only when the simulation is enabled and
// ActiveFireSensorID resolves to a sensor of the district.
type ViewState struct {
	DistrictKey           DistrictKey  `json:"district_key" msgpack:"district_key"`
	FireSimulationEnabled bool         `json:"fire_simulation_enabled" msgpack:"fire_simulation_enabled"`
	ActiveFireSensorID    *SensorID    `json:"active_fire_sensor_id,omitempty" msgpack:"active_fire_sensor_id,omitempty"`
	IncidentLocation      *Coordinates `json:"incident_location,omitempty" msgpack:"incident_location,omitempty"`
}

func (v ViewState) HasIncident() bool {
	return v.IncidentLocation != nil
}

// IsActiveFire reports whether id is the sensor currently on fire.
func IsActiveFire(activeFireSensorID *SensorID, id SensorID) bool {
	return activeFireSensorID != nil && *activeFireSensorID == id
}

type Incident struct {
	Sensor     Sensor
	Location   Coordinates
	DetectedAt time.Time
}
