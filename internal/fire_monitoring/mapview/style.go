package mapview

import (
	"firewatch-server/internal/fire_monitoring/domain"
)

const (
	colorGreen  = "green"
	colorOrange = "orange"
	colorRed    = "red"
)

type styleKey struct {
	class      domain.SensorStatus
	activeFire bool
}

var (
	activeFireStyle = Style{Color: colorRed, FillColor: colorRed, Radius: 10, FillOpacity: 0.8}

	markerStyles = map[styleKey]Style{
		{domain.SensorStatusNormal, false}:   {Color: colorGreen, FillColor: colorGreen, Radius: 6, FillOpacity: 0.6},
		{domain.SensorStatusWarning, false}:  {Color: colorOrange, FillColor: colorOrange, Radius: 6, FillOpacity: 0.6},
		{domain.SensorStatusAbnormal, false}: {Color: colorRed, FillColor: colorRed, Radius: 6, FillOpacity: 0.6},
		{domain.SensorStatusNormal, true}:    activeFireStyle,
		{domain.SensorStatusWarning, true}:   activeFireStyle,
		{domain.SensorStatusAbnormal, true}:  activeFireStyle,
	}

	evacuationZoneStyle = Style{Color: colorRed, FillColor: colorRed, FillOpacity: 0.2}

	fireIcon = Icon{Name: "fire", Prefix: "fa", Color: colorRed}
)

// MarkerStyle picks the circle marker style for a sensor. Statuses other
// than normal and warning are drawn like abnormal.
func MarkerStyle(status domain.SensorStatus, isActiveFire bool) Style {
	return markerStyles[styleKey{class: status.Class(), activeFire: isActiveFire}]
}
