package httpapi

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/usecases"
	"firewatch-server/internal/infra/httpserver"
	"firewatch-server/internal/infra/utils"
	"net/http"
	"strconv"
	"strings"
)

const (
	districtParam = "district"
	simulateParam = "simulate"
	sensorParam   = "sensor"
)

// parseDashboardRequest reads the dashboard controls from the query string.
// A malformed sensor id counts as no selection, and the sensor is ignored
// unless the simulation is on.
func parseDashboardRequest(r *http.Request) usecases.DashboardRequest {
	request := usecases.DashboardRequest{
		DistrictKey:  domain.DistrictKey(strings.TrimSpace(httpserver.GetQueryParam(r, districtParam))),
		SimulateFire: isTruthy(httpserver.GetQueryParam(r, simulateParam)),
	}
	if !request.SimulateFire {
		return request
	}

	id, err := strconv.Atoi(strings.TrimSpace(httpserver.GetQueryParam(r, sensorParam)))
	if err != nil {
		return request
	}
	request.FireSensorID = utils.Ptr(domain.SensorID(id))
	return request
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
