package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics for the defense dashboard API and
// the mission director.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	MissionsStarted   prometheus.Counter
	MissionsCompleted *prometheus.CounterVec

	RosterAsteroids   prometheus.Gauge
	CatalogStrategies prometheus.Gauge
	ActiveMissions    prometheus.Gauge
}

// NewCollector registers the dashboard metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	c.HTTPRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "defense_http_requests_total",
		Help: "Total handled HTTP requests, labeled by route and status code.",
	}, []string{"route", "code"}))
	if err != nil {
		return nil, err
	}
	c.HTTPDurations, err = registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "defense_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route"}))
	if err != nil {
		return nil, err
	}
	c.MissionsStarted, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "defense_missions_started_total",
		Help: "Total deflection missions launched.",
	}))
	if err != nil {
		return nil, err
	}
	c.MissionsCompleted, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "defense_missions_completed_total",
		Help: "Total completed missions, labeled by result (deflected or partial).",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	c.RosterAsteroids, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "defense_roster_asteroids",
		Help: "Current number of asteroids in the threat roster.",
	}))
	if err != nil {
		return nil, err
	}
	c.CatalogStrategies, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "defense_catalog_strategies",
		Help: "Current number of strategies in the defense playbook.",
	}))
	if err != nil {
		return nil, err
	}
	c.ActiveMissions, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "defense_active_missions",
		Help: "Missions currently running.",
	}))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// The register helpers keep the already-registered collector when a second
// Collector is built against the same registry.

func registerCounter(reg prometheus.Registerer, col prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return col, nil
}

func registerCounterVec(reg prometheus.Registerer, col *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return col, nil
}

func registerHistogramVec(reg prometheus.Registerer, col *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return col, nil
}

func registerGauge(reg prometheus.Registerer, col prometheus.Gauge) (prometheus.Gauge, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return col, nil
}

// Handler exposes the /metrics endpoint for this collector's gatherer.
func (c *Collector) Handler() http.Handler {
	if c == nil || c.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// statusRecorder captures the response code for the request counter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler wraps an HTTP handler with request count and duration
// metrics under the given route label.
func (c *Collector) InstrumentHandler(route string, next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	})
}

// MissionCompleted records a terminal mission result.
func (c *Collector) MissionCompleted(result string) {
	if c == nil || c.MissionsCompleted == nil {
		return
	}
	c.MissionsCompleted.WithLabelValues(result).Inc()
}
