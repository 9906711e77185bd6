package httpapi

import (
	"firewatch-server/internal/fire_monitoring/usecases"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unknownDistrictLabel = "unknown"

var (
	dashboardRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firewatch_dashboard_renders_total",
		Help: "Total number of dashboard renders",
	}, []string{"district", "format", "simulation"})
	simulatedIncidents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firewatch_simulated_incidents_total",
		Help: "Dashboard renders showing a simulated fire, by sensor",
	}, []string{"district", "sensor"})
)

func observeRender(dashboard usecases.Dashboard, format string) {
	district := districtLabel(dashboard)
	simulation := "off"
	if dashboard.ViewState.FireSimulationEnabled {
		simulation = "on"
	}
	dashboardRenders.WithLabelValues(district, format, simulation).Inc()

	if dashboard.Alert != nil {
		simulatedIncidents.WithLabelValues(district, dashboard.Alert.SensorName).Inc()
	}
}

// districtLabel keeps label cardinality bounded to the configured districts.
func districtLabel(dashboard usecases.Dashboard) string {
	for _, option := range dashboard.DistrictOptions {
		if option.Selected {
			return option.Key.String()
		}
	}
	return unknownDistrictLabel
}
