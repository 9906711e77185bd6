package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SensorStatus string

const (
	SensorStatusNormal   SensorStatus = "normal"
	SensorStatusWarning  SensorStatus = "warning"
	SensorStatusAbnormal SensorStatus = "abnormal"
)

// Class collapses any status outside normal/warning into abnormal.
func (s SensorStatus) Class() SensorStatus {
	switch s {
	case SensorStatusNormal, SensorStatusWarning:
		return s
	default:
		return SensorStatusAbnormal
	}
}

func (s SensorStatus) String() string {
	return string(s)
}

// LowBatteryThreshold is the battery level below which a sensor is flagged.
const LowBatteryThreshold = 20

type Sensor struct {
	ID           SensorID     `json:"id" msgpack:"id"`
	Name         string       `json:"name" msgpack:"name"`
	Location     string       `json:"location" msgpack:"location"`
	Coordinates  Coordinates  `json:"coordinates" msgpack:"coordinates"`
	Status       SensorStatus `json:"status" msgpack:"status"`
	BatteryLevel int          `json:"battery_level" msgpack:"battery_level"`
}

// Label is the text shown in the fire sensor selector.
func (s Sensor) Label() string {
	return s.Name + " (" + s.Location + ")"
}

func (s Sensor) HasLowBattery() bool {
	return s.BatteryLevel < LowBatteryThreshold
}

// WithStatus returns a copy of the sensor carrying the given status.
func (s Sensor) WithStatus(status SensorStatus) Sensor {
	s.Status = status
	return s
}

// FindSensor returns the first sensor whose ID matches.
func FindSensor(sensors []Sensor, id SensorID) (Sensor, bool) {
	for _, s := range sensors {
		if s.ID == id {
			return s, true
		}
	}
	return Sensor{}, false
}

// DisplayText is the uppercase status shown to operators.
func (s SensorStatus) DisplayText() string {
	// Casers keep state and must not be shared across requests.
	return cases.Upper(language.Und).String(string(s))
}
