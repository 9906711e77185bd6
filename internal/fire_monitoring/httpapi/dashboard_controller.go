package httpapi

import (
	"firewatch-server/internal/fire_monitoring/httpapi/internal"
	"firewatch-server/internal/fire_monitoring/usecases"
	"firewatch-server/internal/infra/httpserver"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
)

const (
	renderDashboardErrMessage = "failed to render dashboard"

	formatHTML    = "html"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

func NewDashboardController(service usecases.DashboardService) *DashboardController {
	return &DashboardController{
		service,
	}
}

var _ httpserver.Controller = &DashboardController{}

type DashboardController struct {
	service usecases.DashboardService
}

func (c *DashboardController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /{$}", c.renderDashboard())
	router.Handle("GET /v1/dashboard", c.getDashboard())
}

func (c *DashboardController) renderDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := parseDashboardRequest(r)
		traceRequest(r, request)

		dashboard, err := c.service.Dashboard(r.Context(), request)
		if err != nil {
			slog.Error("building dashboard", slog.Any("error", err))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, renderDashboardErrMessage)
			return
		}

		body, err := renderDashboardHTML(dashboard)
		if err != nil {
			slog.Error("rendering dashboard html", slog.Any("error", err))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, renderDashboardErrMessage)
			return
		}

		observeRender(dashboard, formatHTML)
		httpserver.ReplyHTML(w, http.StatusOK, body)
	}
}

func (c *DashboardController) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := parseDashboardRequest(r)
		traceRequest(r, request)

		dashboard, err := c.service.Dashboard(r.Context(), request)
		if err != nil {
			slog.Error("building dashboard", slog.Any("error", err))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, renderDashboardErrMessage)
			return
		}

		format := formatJSON
		if httpserver.AcceptsMsgpack(r) {
			format = formatMsgpack
		}
		observeRender(dashboard, format)
		httpserver.ReplyNegotiated(w, r, http.StatusOK, internal.ToDashboardResponse(dashboard))
	}
}

func traceRequest(r *http.Request, request usecases.DashboardRequest) {
	span := httpserver.GetSpanFromContext(r)
	span.SetAttributes(
		attribute.String("dashboard.district", request.DistrictKey.String()),
		attribute.Bool("dashboard.simulate_fire", request.SimulateFire),
	)
	if request.FireSensorID != nil {
		span.SetAttributes(attribute.Int("dashboard.fire_sensor_id", int(*request.FireSensorID)))
	}
}
