package adapter

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// MetricsRecorder collects scan counters.
type MetricsRecorder interface {
	PackageQueried(packageManager string, outcome m.PackageOutcome, duration time.Duration)
	FileRead(ok bool)
	EdgesRecorded(kind m.EdgeKind, count int)
	ServiceScanned(manager string, duration time.Duration)
}

// PrometheusRecorder records scan metrics into its own registry so that
// they can be exported in the node_exporter textfile format.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	packageQueries  *prometheus.CounterVec
	packageDuration *prometheus.HistogramVec
	filesRead       *prometheus.CounterVec
	edges           *prometheus.CounterVec
	serviceDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder with a fresh registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusRecorder{
		registry: registry,
		packageQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "svcdeps_package_queries_total",
			Help: "Package file-listing queries by package manager and outcome",
		}, []string{"package_manager", "outcome"}),
		packageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "svcdeps_package_query_duration_seconds",
			Help:    "Duration of package file-listing queries",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"package_manager"}),
		filesRead: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "svcdeps_files_read_total",
			Help: "Dependency files read for pathname extraction by result",
		}, []string{"result"}),
		edges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "svcdeps_edges_recorded_total",
			Help: "New service dependency edges recorded by kind",
		}, []string{"kind"}),
		serviceDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "svcdeps_service_scan_duration_seconds",
			Help:    "Time spent resolving the dependencies of one service",
			Buckets: prometheus.DefBuckets,
		}, []string{"manager"}),
	}
}

// Registry exposes the underlying registry.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// PackageQueried counts a package query.
func (r *PrometheusRecorder) PackageQueried(packageManager string, outcome m.PackageOutcome, duration time.Duration) {
	r.packageQueries.WithLabelValues(packageManager, outcome.String()).Inc()

	if outcome != m.OutcomeUnsupported {
		r.packageDuration.WithLabelValues(packageManager).Observe(duration.Seconds())
	}
}

// FileRead counts a dependency file read.
func (r *PrometheusRecorder) FileRead(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}

	r.filesRead.WithLabelValues(result).Inc()
}

// EdgesRecorded counts newly recorded edges.
func (r *PrometheusRecorder) EdgesRecorded(kind m.EdgeKind, count int) {
	if count <= 0 {
		return
	}

	r.edges.WithLabelValues(string(kind)).Add(float64(count))
}

// ServiceScanned observes the time taken to resolve one service.
func (r *PrometheusRecorder) ServiceScanned(manager string, duration time.Duration) {
	r.serviceDuration.WithLabelValues(manager).Observe(duration.Seconds())
}

// WriteTextfile writes every collected metric to path in the text exposition format.
func (r *PrometheusRecorder) WriteTextfile(path m.Path) error {
	if err := prometheus.WriteToTextfile(string(path), r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}

	return nil
}
