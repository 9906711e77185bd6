package steps

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

type coordinates struct {
	Lat float64 `json:"lat" msgpack:"lat"`
	Lon float64 `json:"lon" msgpack:"lon"`
}

type markerStyle struct {
	Color  string `json:"color" msgpack:"color"`
	Radius int    `json:"radius" msgpack:"radius"`
}

type dashboardView struct {
	DistrictName string `json:"district_name" msgpack:"district_name"`
	Map          struct {
		Center        coordinates `json:"center" msgpack:"center"`
		CircleMarkers []struct {
			SensorID int         `json:"sensor_id" msgpack:"sensor_id"`
			Position coordinates `json:"position" msgpack:"position"`
			Style    markerStyle `json:"style" msgpack:"style"`
		} `json:"circle_markers" msgpack:"circle_markers"`
		Circles []struct {
			Position     coordinates `json:"position" msgpack:"position"`
			RadiusMeters int         `json:"radius_meters" msgpack:"radius_meters"`
		} `json:"circles" msgpack:"circles"`
		Markers []struct {
			Position coordinates `json:"position" msgpack:"position"`
		} `json:"markers" msgpack:"markers"`
	} `json:"map" msgpack:"map"`
	Statistics struct {
		NormalCount   int     `json:"normal_count" msgpack:"normal_count"`
		WarningCount  int     `json:"warning_count" msgpack:"warning_count"`
		AbnormalCount int     `json:"abnormal_count" msgpack:"abnormal_count"`
		NormalPct     float64 `json:"normal_pct" msgpack:"normal_pct"`
		WarningPct    float64 `json:"warning_pct" msgpack:"warning_pct"`
		AbnormalPct   float64 `json:"abnormal_pct" msgpack:"abnormal_pct"`
	} `json:"statistics" msgpack:"statistics"`
	BatteryChart []struct {
		Name string `json:"name" msgpack:"name"`
	} `json:"battery_chart" msgpack:"battery_chart"`
	Alert *struct {
		SensorName string `json:"sensor_name" msgpack:"sensor_name"`
		Location   string `json:"location" msgpack:"location"`
		DetectedAt string `json:"detected_at" msgpack:"detected_at"`
	} `json:"alert" msgpack:"alert"`
}

var detectedAtPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

func (fc *FeatureContext) theOperatorSelectsTheDistrict(key string) error {
	fc.query.Set("district", key)
	return nil
}

func (fc *FeatureContext) theFireSimulationIsEnabled() error {
	fc.query.Set("simulate", "on")
	return nil
}

func (fc *FeatureContext) theOperatorPicksSensorAsTheFireSensor(sensor string) error {
	fc.query.Set("sensor", sensor)
	return nil
}

func (fc *FeatureContext) iRequestTheDashboard() error {
	return fc.capture(fc.apiDriver.GetDashboard(fc.query, ""))
}

func (fc *FeatureContext) iRequestTheDashboardAsMsgpack() error {
	return fc.capture(fc.apiDriver.GetDashboard(fc.query, "application/msgpack"))
}

func (fc *FeatureContext) iOpenTheDashboardPage() error {
	return fc.capture(fc.apiDriver.GetDashboardPage(fc.query))
}

func (fc *FeatureContext) dashboard() dashboardView {
	var view dashboardView
	if strings.HasPrefix(fc.response.Header.Get("Content-Type"), "application/msgpack") {
		fc.require.NoError(msgpack.Unmarshal(fc.body, &view))
		return view
	}
	fc.decodeJSON(&view)
	return view
}

func (fc *FeatureContext) theDistrictNameShouldBe(name string) error {
	fc.require.Equal(name, fc.dashboard().DistrictName)
	return nil
}

func (fc *FeatureContext) theStatisticsShouldBe(normal int, normalPct float64, warning int, warningPct float64, abnormal int, abnormalPct float64) error {
	stats := fc.dashboard().Statistics
	fc.require.Equal(normal, stats.NormalCount)
	fc.require.Equal(normalPct, stats.NormalPct)
	fc.require.Equal(warning, stats.WarningCount)
	fc.require.Equal(warningPct, stats.WarningPct)
	fc.require.Equal(abnormal, stats.AbnormalCount)
	fc.require.Equal(abnormalPct, stats.AbnormalPct)
	return nil
}

func (fc *FeatureContext) theMapShouldHaveSensorMarkers(count int) error {
	fc.require.Len(fc.dashboard().Map.CircleMarkers, count)
	return nil
}

func (fc *FeatureContext) sensorMarkersShouldBeWithRadius(count int, color string, radius int) error {
	matches := 0
	for _, marker := range fc.dashboard().Map.CircleMarkers {
		if marker.Style.Color == color && marker.Style.Radius == radius {
			matches++
		}
	}
	fc.require.Equal(count, matches)
	return nil
}

func (fc *FeatureContext) sensorShouldBeDrawnWithRadius(id int, color string, radius int) error {
	for _, marker := range fc.dashboard().Map.CircleMarkers {
		if marker.SensorID == id {
			fc.require.Equal(color, marker.Style.Color)
			fc.require.Equal(radius, marker.Style.Radius)
			return nil
		}
	}
	fc.require.Failf("missing marker", "no marker for sensor %d", id)
	return nil
}

func (fc *FeatureContext) theMapShouldHaveNoIncidentOverlay() error {
	view := fc.dashboard()
	fc.require.Empty(view.Map.Circles)
	fc.require.Empty(view.Map.Markers)
	return nil
}

func (fc *FeatureContext) theMapShouldHaveAnEvacuationZoneAt(radius int, lat, lon float64) error {
	circles := fc.dashboard().Map.Circles
	fc.require.Len(circles, 1)
	fc.require.Equal(radius, circles[0].RadiusMeters)
	fc.require.Equal(coordinates{Lat: lat, Lon: lon}, circles[0].Position)
	return nil
}

func (fc *FeatureContext) theMapShouldHaveAFirePinAt(lat, lon float64) error {
	markers := fc.dashboard().Map.Markers
	fc.require.Len(markers, 1)
	fc.require.Equal(coordinates{Lat: lat, Lon: lon}, markers[0].Position)
	return nil
}

func (fc *FeatureContext) theMapShouldBeCenteredAt(lat, lon float64) error {
	fc.require.Equal(coordinates{Lat: lat, Lon: lon}, fc.dashboard().Map.Center)
	return nil
}

func (fc *FeatureContext) theBatteryChartShouldStartWithAndEndWith(first, last string) error {
	chart := fc.dashboard().BatteryChart
	fc.require.NotEmpty(chart)
	fc.require.Equal(first, chart[0].Name)
	fc.require.Equal(last, chart[len(chart)-1].Name)
	return nil
}

func (fc *FeatureContext) thereShouldBeNoAlert() error {
	fc.require.Nil(fc.dashboard().Alert)
	return nil
}

func (fc *FeatureContext) theAlertShouldNameAt(sensor, location string) error {
	alert := fc.dashboard().Alert
	fc.require.NotNil(alert)
	fc.require.Equal(sensor, alert.SensorName)
	fc.require.Equal(location, alert.Location)
	return nil
}

func (fc *FeatureContext) theAlertShouldCarryADetectionTime() error {
	alert := fc.dashboard().Alert
	fc.require.NotNil(alert)
	fc.require.Regexp(detectedAtPattern, alert.DetectedAt)
	return nil
}

func (fc *FeatureContext) thePageShouldContain(text string) error {
	fc.require.Contains(string(fc.body), text)
	return nil
}

func (fc *FeatureContext) thePageShouldNotContain(text string) error {
	fc.require.NotContains(string(fc.body), text)
	return nil
}

func (fc *FeatureContext) thePageShouldShowTheElement(id string) error {
	fc.require.Contains(string(fc.body), fmt.Sprintf(`id="%s"`, id))
	return nil
}

func (fc *FeatureContext) thePageShouldNotShowTheElement(id string) error {
	fc.require.NotContains(string(fc.body), fmt.Sprintf(`id="%s"`, id))
	return nil
}
