// Package metrics publishes Prometheus metrics for client activity by
// implementing the ispncache.Hooks callback interface.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vijay2351989/ispncache"
)

// Recorder counts retry, provisioning and decode events. When reg is nil a
// dedicated registry is created so multiple recorders can coexist without
// conflicting with the global default registerer.
type Recorder struct {
	gatherer prometheus.Gatherer
	handler  http.Handler

	retries           *prometheus.CounterVec
	exhausted         *prometheus.CounterVec
	existsFailures    prometheus.Counter
	provisionFailures *prometheus.CounterVec
	decodeFallbacks   *prometheus.CounterVec
	schemaFailures    prometheus.Counter
}

var _ ispncache.Hooks = (*Recorder)(nil)

func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}

	retries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ispncache",
		Name:      "retries_total",
		Help:      "Retry attempts scheduled after transport failures.",
	}, []string{"op"})

	exhausted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ispncache",
		Name:      "retries_exhausted_total",
		Help:      "Operations whose retry budget was fully consumed.",
	}, []string{"op"})

	existsFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ispncache",
		Name:      "exists_check_failures_total",
		Help:      "Existence checks that failed and were reported as absent.",
	})

	provisionFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ispncache",
		Name:      "provision_failures_total",
		Help:      "EnsureExists calls that could not create the cache.",
	}, []string{"cache"})

	decodeFallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ispncache",
		Name:      "decode_fallbacks_total",
		Help:      "Value decodes that degraded instead of failing.",
	}, []string{"reason"})

	schemaFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ispncache",
		Name:      "schema_registration_failures_total",
		Help:      "Schema registrations that did not succeed.",
	})

	reg.MustRegister(retries, exhausted, existsFailures, provisionFailures, decodeFallbacks, schemaFailures)

	return &Recorder{
		gatherer:          reg,
		handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		retries:           retries,
		exhausted:         exhausted,
		existsFailures:    existsFailures,
		provisionFailures: provisionFailures,
		decodeFallbacks:   decodeFallbacks,
		schemaFailures:    schemaFailures,
	}
}

// Handler serves the recorder's registry in Prometheus exposition format.
func (r *Recorder) Handler() http.Handler { return r.handler }

// Gatherer exposes the registry for callers embedding it elsewhere.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.gatherer }

func (r *Recorder) RetryScheduled(op, _ string, _ int, _ time.Duration) {
	r.retries.WithLabelValues(op).Inc()
}

func (r *Recorder) RetriesExhausted(op, _ string, _ int, _ error) {
	r.exhausted.WithLabelValues(op).Inc()
}

func (r *Recorder) ExistsCheckFailed(string, error) {
	r.existsFailures.Inc()
}

func (r *Recorder) ProvisionFailed(cache string, _ error) {
	r.provisionFailures.WithLabelValues(cache).Inc()
}

func (r *Recorder) DecodeFallback(_, _, reason string) {
	r.decodeFallbacks.WithLabelValues(reason).Inc()
}

func (r *Recorder) SchemaRegistrationFailed(string, error) {
	r.schemaFailures.Inc()
}
