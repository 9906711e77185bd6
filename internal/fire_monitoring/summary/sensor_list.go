// Package summary derives the sensor list, status statistics and battery
// chart shown beside the map.
package summary

import (
	"firewatch-server/internal/fire_monitoring/domain"
)

const fireGlyph = "🔥"

var statusGlyphs = map[domain.SensorStatus]string{
	domain.SensorStatusNormal:   "✅",
	domain.SensorStatusWarning:  "⚠️",
	domain.SensorStatusAbnormal: "❌",
}

type SensorRow struct {
	SensorID     domain.SensorID
	Glyph        string
	Name         string
	Location     string
	StatusText   string
	StatusClass  domain.SensorStatus
	BatteryLevel int
	ActiveFire   bool
	LowBattery   bool
}

func RenderSensorList(sensors []domain.Sensor, activeFireSensorID *domain.SensorID) []SensorRow {
	rows := make([]SensorRow, 0, len(sensors))
	for _, s := range sensors {
		row := SensorRow{
			SensorID:     s.ID,
			Glyph:        statusGlyphs[s.Status.Class()],
			Name:         s.Name,
			Location:     s.Location,
			StatusText:   s.Status.DisplayText(),
			StatusClass:  s.Status.Class(),
			BatteryLevel: s.BatteryLevel,
			LowBattery:   s.HasLowBattery(),
		}
		if domain.IsActiveFire(activeFireSensorID, s.ID) {
			row.Glyph = fireGlyph
			row.StatusText = domain.SensorStatusAbnormal.DisplayText()
			row.StatusClass = domain.SensorStatusAbnormal
			row.ActiveFire = true
		}
		rows = append(rows, row)
	}
	return rows
}
