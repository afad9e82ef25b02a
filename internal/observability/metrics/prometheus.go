package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus is a Recorder backed by a private Prometheus registry.
type Prometheus struct {
	reg *prometheus.Registry

	gatewayCalls    *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	sessionEvents   *prometheus.CounterVec
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus registers the panel collectors plus Go and process collectors.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		reg: reg,
		gatewayCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "locker_panel",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Backend calls made through the API gateway by route, outcome and status.",
		}, []string{"method", "route", "outcome", "status", "error_class"}),
		gatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "locker_panel",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Latency of backend calls made through the API gateway.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sessionEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "locker_panel",
			Subsystem: "session",
			Name:      "events_total",
			Help:      "Session lifecycle events (login, logout, expired).",
		}, []string{"event"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.gatewayCalls,
		p.gatewayDuration,
		p.sessionEvents,
	)
	return p
}

func (p *Prometheus) ObserveGatewayCall(call GatewayCall) {
	status := ""
	if call.Status > 0 {
		status = strconv.Itoa(call.Status)
	}
	p.gatewayCalls.WithLabelValues(call.Method, call.Route, call.Outcome, status, ErrorClass(call)).Inc()
	if call.Duration > 0 {
		p.gatewayDuration.WithLabelValues(call.Method, call.Route).Observe(call.Duration.Seconds())
	}
}

func (p *Prometheus) SessionEvent(event string) {
	p.sessionEvents.WithLabelValues(event).Inc()
}

// Registry exposes the underlying registry (tests, extra collectors).
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}
