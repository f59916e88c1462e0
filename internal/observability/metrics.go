package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// Engine-level counters. Registered once at package init; cheap to bump from
// anywhere in the service layer.
var (
	CalculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "affordability_calculations_total",
		Help: "Number of borrowing-power calculations performed.",
	})

	NonConvergedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "affordability_calculations_nonconverged_total",
		Help: "Calculations that hit the iteration cap without converging.",
	})

	RateResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "affordability_rate_resolutions_total",
		Help: "Interest-rate resolutions by source (scrape, ai, default, cache).",
	}, []string{"source"})
)
