package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// Service owns the Prometheus registry and the hub's own collectors.
type Service struct {
	registry *prometheus.Registry

	classificationGaps prometheus.Counter
	categoryConflicts  prometheus.Counter
	skippedReadings    prometheus.Counter
	queryDuration      *prometheus.HistogramVec
	queryErrors        *prometheus.CounterVec
}

// NewService creates a monitoring service with all collectors registered.
func NewService() *Service {
	registry := prometheus.NewRegistry()

	s := &Service{
		registry: registry,
		classificationGaps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agrohub_classification_gaps_total",
			Help: "Sensor groups that matched no category rule.",
		}),
		categoryConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agrohub_category_conflicts_total",
			Help: "Sensor groups that classified into an already claimed category.",
		}),
		skippedReadings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agrohub_skipped_readings_total",
			Help: "Readings dropped because valor was not numeric.",
		}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agrohub_query_duration_seconds",
			Help:    "Duration of relational-source queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		queryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agrohub_query_errors_total",
			Help: "Relational-source queries that failed.",
		}, []string{"operation"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		s.classificationGaps,
		s.categoryConflicts,
		s.skippedReadings,
		s.queryDuration,
		s.queryErrors,
	)
	return s
}

// Handler exposes the registry in Prometheus text format.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// ObserveQuery records duration and outcome of one source query.
func (s *Service) ObserveQuery(operation string, elapsed time.Duration, err error) {
	s.queryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		s.queryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordClassificationGap notes a sensor group that no rule matched. Soft
// condition: counted and logged so operators notice unclassified sensors.
func (s *Service) RecordClassificationGap(sensorKey string) {
	s.classificationGaps.Inc()
	nuts.L.Infof("[Monitoring] Sensor group %s matched no category", sensorKey)
}

// RecordCategoryConflict notes a category slot contested by a second group.
func (s *Service) RecordCategoryConflict(category, sensorKey string) {
	s.categoryConflicts.Inc()
	nuts.L.Warnf("[Monitoring] Category %s already claimed, ignoring group %s", category, sensorKey)
}

// RecordSkippedReadings adds rows dropped during aggregation.
func (s *Service) RecordSkippedReadings(count int) {
	if count > 0 {
		s.skippedReadings.Add(float64(count))
	}
}
