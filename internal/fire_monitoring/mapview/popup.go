package mapview

import (
	"bytes"
	"firewatch-server/internal/fire_monitoring/domain"
	"html/template"
	"log/slog"
)

const (
	popupMaxWidth = 200

	evacuationZonePopup = "Evacuation Zone - 200m"
	incidentPopup       = "Fire Incident Location"
)

var (
	sensorPopupTemplate = template.Must(template.New("sensor-popup").Parse(
		`<div style="font-family: Arial; width: 180px;">` +
			`<h4 style="margin-bottom: 5px;">{{.Name}}</h4>` +
			`<p><b>Location:</b> {{.Location}}</p>` +
			`<p><b>Status:</b> <span style="color: {{.Color}}; font-weight: bold;">{{.StatusText}}</span></p>` +
			`<p><b>Battery:</b> <span{{if .LowBattery}} style="color: red; font-weight: bold;"{{end}}>{{.BatteryLevel}}%</span></p>` +
			`</div>`))

	firePopupTemplate = template.Must(template.New("fire-popup").Parse(
		`<div style="font-family: Arial; width: 200px;">` +
			`<h4 style="color: #d00; margin-bottom: 5px;">{{.Name}} - FIRE ALERT! 🔥</h4>` +
			`<p><b>Location:</b> {{.Location}}</p>` +
			`<p><b>Status:</b> <span style="color: red; font-weight: bold;">{{.StatusText}}</span></p>` +
			`<p><b>Battery:</b> <span{{if .LowBattery}} style="color: red; font-weight: bold;"{{end}}>{{.BatteryLevel}}%</span></p>` +
			`</div>`))
)

type popupData struct {
	Name         string
	Location     string
	Color        string
	StatusText   string
	BatteryLevel int
	LowBattery   bool
}

func sensorPopup(sensor domain.Sensor, style Style, isActiveFire bool) string {
	data := popupData{
		Name:         sensor.Name,
		Location:     sensor.Location,
		Color:        style.Color,
		StatusText:   sensor.Status.DisplayText(),
		BatteryLevel: sensor.BatteryLevel,
		LowBattery:   sensor.HasLowBattery(),
	}

	tmpl := sensorPopupTemplate
	if isActiveFire {
		tmpl = firePopupTemplate
		data.StatusText = domain.SensorStatusAbnormal.DisplayText()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("rendering sensor popup", slog.Int("sensor_id", int(sensor.ID)), slog.Any("error", err))
		return template.HTMLEscapeString(sensor.Name)
	}
	return buf.String()
}
