// Package mapview turns a sensor table into a map descriptor that the
// dashboard page draws with Leaflet.
package mapview

import (
	"firewatch-server/internal/fire_monitoring/domain"
)

const (
	DefaultZoom  = 15
	IncidentZoom = 16

	openStreetMapURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	openStreetMapAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	openStreetMapMaxZoom     = 19
)

type MapView struct {
	Center        domain.Coordinates `json:"center" msgpack:"center"`
	Zoom          int                `json:"zoom" msgpack:"zoom"`
	Tiles         TileLayer          `json:"tiles" msgpack:"tiles"`
	CircleMarkers []CircleMarker     `json:"circle_markers" msgpack:"circle_markers"`
	Circles       []Circle           `json:"circles" msgpack:"circles"`
	Markers       []Marker           `json:"markers" msgpack:"markers"`
	Focus         *Focus             `json:"focus,omitempty" msgpack:"focus,omitempty"`
}

// Focus is where the map flies to after loading.
type Focus struct {
	Position domain.Coordinates `json:"position" msgpack:"position"`
	Zoom     int                `json:"zoom" msgpack:"zoom"`
}

type TileLayer struct {
	URL         string `json:"url" msgpack:"url"`
	Attribution string `json:"attribution" msgpack:"attribution"`
	MaxZoom     int    `json:"max_zoom" msgpack:"max_zoom"`
}

type Style struct {
	Color       string  `json:"color" msgpack:"color"`
	FillColor   string  `json:"fill_color" msgpack:"fill_color"`
	Radius      int     `json:"radius" msgpack:"radius"`
	FillOpacity float64 `json:"fill_opacity" msgpack:"fill_opacity"`
}

type Popup struct {
	HTML     string `json:"html" msgpack:"html"`
	MaxWidth int    `json:"max_width,omitempty" msgpack:"max_width,omitempty"`
}

// CircleMarker radius is in screen pixels.
type CircleMarker struct {
	SensorID   domain.SensorID    `json:"sensor_id" msgpack:"sensor_id"`
	Position   domain.Coordinates `json:"position" msgpack:"position"`
	Style      Style              `json:"style" msgpack:"style"`
	Popup      Popup              `json:"popup" msgpack:"popup"`
	ActiveFire bool               `json:"active_fire" msgpack:"active_fire"`
}

// Circle radius is in meters.
type Circle struct {
	Position     domain.Coordinates `json:"position" msgpack:"position"`
	RadiusMeters int                `json:"radius_meters" msgpack:"radius_meters"`
	Style        Style              `json:"style" msgpack:"style"`
	Popup        Popup              `json:"popup" msgpack:"popup"`
}

type Icon struct {
	Name   string `json:"name" msgpack:"name"`
	Prefix string `json:"prefix" msgpack:"prefix"`
	Color  string `json:"color" msgpack:"color"`
}

type Marker struct {
	Position domain.Coordinates `json:"position" msgpack:"position"`
	Icon     Icon               `json:"icon" msgpack:"icon"`
	Popup    Popup              `json:"popup" msgpack:"popup"`
}

// Render builds a fresh map for the given sensors. It keeps no state
// between calls, so equal inputs always produce equal maps.
func Render(
	center domain.Coordinates,
	sensors []domain.Sensor,
	activeFireSensorID *domain.SensorID,
	incidentLocation *domain.Coordinates,
) MapView {
	view := MapView{
		Center: center,
		Zoom:   DefaultZoom,
		Tiles: TileLayer{
			URL:         openStreetMapURL,
			Attribution: openStreetMapAttribution,
			MaxZoom:     openStreetMapMaxZoom,
		},
		CircleMarkers: make([]CircleMarker, 0, len(sensors)),
		Circles:       []Circle{},
		Markers:       []Marker{},
	}

	for _, sensor := range sensors {
		isActiveFire := domain.IsActiveFire(activeFireSensorID, sensor.ID)
		style := MarkerStyle(sensor.Status, isActiveFire)
		view.CircleMarkers = append(view.CircleMarkers, CircleMarker{
			SensorID: sensor.ID,
			Position: sensor.Coordinates,
			Style:    style,
			Popup: Popup{
				HTML:     sensorPopup(sensor, style, isActiveFire),
				MaxWidth: popupMaxWidth,
			},
			ActiveFire: isActiveFire,
		})
	}

	if incidentLocation != nil {
		view.Circles = append(view.Circles, Circle{
			Position:     *incidentLocation,
			RadiusMeters: domain.EvacuationRadiusMeters,
			Style:        evacuationZoneStyle,
			Popup:        Popup{HTML: evacuationZonePopup},
		})
		view.Markers = append(view.Markers, Marker{
			Position: *incidentLocation,
			Icon:     fireIcon,
			Popup:    Popup{HTML: incidentPopup},
		})
		view.Focus = &Focus{Position: *incidentLocation, Zoom: IncidentZoom}
	}

	return view
}
