package httpserver

import (
	"net/http"
	"regexp"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "firewatch-server"

	metricRequestDuration = "firewatch_server.http.request.duration.seconds"
	metricRequestsTotal   = "firewatch_server.http.requests.total"
	metricRequestsActive  = "firewatch_server.http.requests.active"

	rootEndpoint      = "root"
	unmatchedEndpoint = "unmatched"
)

var (
	knownEndpoints = map[string]string{
		"":              rootEndpoint,
		"/":             rootEndpoint,
		"/v1/dashboard": "/v1/dashboard",
		"/v1/districts": "/v1/districts",
		"/healthz":      "/healthz",
		"/metrics":      "/metrics",
	}

	districtSensorsPath = regexp.MustCompile(`^/v1/districts/[^/]+/sensors$`)

	durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

type requestMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newRequestMetrics(meter metric.Meter) (*requestMetrics, error) {
	duration, err := meter.Float64Histogram(metricRequestDuration,
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(metricRequestsTotal,
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(metricRequestsActive,
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, err
	}

	return &requestMetrics{duration: duration, total: total, active: active}, nil
}

// MetricsMiddleware records request count, latency and in-flight requests
// against the global meter provider. Endpoints are reported by route, so
// the label set stays bounded whatever paths clients send.
func MetricsMiddleware() func(http.Handler) http.Handler {
	instruments, err := newRequestMetrics(otel.GetMeterProvider().Meter(meterName))
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			inFlight := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)
			instruments.active.Add(ctx, 1, inFlight)
			defer instruments.active.Add(ctx, -1, inFlight)

			wrapped := &statusCodeResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			completed := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
				attribute.Int("http.status_code", wrapped.statusCode),
			)
			instruments.duration.Record(ctx, time.Since(start).Seconds(), completed)
			instruments.total.Add(ctx, 1, completed)
		})
	}
}

func normalizeEndpoint(path string) string {
	if endpoint, ok := knownEndpoints[path]; ok {
		return endpoint
	}
	if districtSensorsPath.MatchString(path) {
		return "/v1/districts/_key/sensors"
	}
	return unmatchedEndpoint
}
