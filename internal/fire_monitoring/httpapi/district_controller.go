package httpapi

import (
	"firewatch-server/internal/fire_monitoring/domain"
	"firewatch-server/internal/fire_monitoring/httpapi/internal"
	"firewatch-server/internal/fire_monitoring/usecases"
	"firewatch-server/internal/infra/httpserver"
	"net/http"
)

func NewDistrictController(service usecases.DashboardService) *DistrictController {
	return &DistrictController{
		service,
	}
}

var _ httpserver.Controller = &DistrictController{}

type DistrictController struct {
	service usecases.DashboardService
}

func (c *DistrictController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/districts", c.listDistricts())
	router.Handle("GET /v1/districts/{key}/sensors", c.listSensors())
}

func (c *DistrictController) listDistricts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districts, err := c.service.Districts(r.Context())
		if err != nil {
			http.Error(w, "failed to list districts", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyNegotiated(w, r, http.StatusOK, internal.ToDistrictListResponse(districts))
	}
}

func (c *DistrictController) listSensors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.DistrictKey(httpserver.GetPathParam(r, "key"))

		sensors, err := c.service.Sensors(r.Context(), key)
		if err != nil {
			http.Error(w, "failed to list sensors", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyNegotiated(w, r, http.StatusOK, internal.ToSensorResponses(sensors))
	}
}
