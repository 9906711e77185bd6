package summary

import (
	"cmp"
	"firewatch-server/internal/fire_monitoring/domain"
	"slices"
)

type BatteryBar struct {
	Name         string
	BatteryLevel int
	LowBattery   bool
}

// RenderBatteryChart orders bars by ascending battery level. Ties keep
// their catalog order.
func RenderBatteryChart(sensors []domain.Sensor) []BatteryBar {
	bars := make([]BatteryBar, 0, len(sensors))
	for _, s := range sensors {
		bars = append(bars, BatteryBar{Name: s.Name, BatteryLevel: s.BatteryLevel, LowBattery: s.HasLowBattery()})
	}

	slices.SortStableFunc(bars, func(a, b BatteryBar) int {
		return cmp.Compare(a.BatteryLevel, b.BatteryLevel)
	})
	return bars
}
